package category

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"Email Address", Email},
		{"  ALAMAT EMAIL  ", Email},
		{"mail", Email},
		{"banana", Generic},
		{"", Generic},
		{"nama", FullName},
		{"Full Name", FullName},
		{"nickname", FullName},
		{"username", Username},
		{"no hp", Phone},
		{"Nomor HP Indonesia", Phone},
		{"NIK", Identity},
		{"tanggal lahir", DateTime},
		{"harga", Numeric},
		{"deskripsi", LongForm},
		{"website", Website},
		{"job title", JobTitle},
		{"jenis barang", Product},
		{"lembaga", Institution},
		{"perusahaan", Company},
		{"venue", Location},
		{"headline", Title},
		{"keyword", Tag},
		{"domicile", Address},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Resolve(tt.label); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.label, got, tt.want)
			}
		})
	}
}

func TestResolveIsTotal(t *testing.T) {
	for _, label := range []string{"\x00", "😀", "email\n", "e-mail", "   ", "ÉMAIL"} {
		_ = Resolve(label)
	}
	if got := Resolve("e-mail"); got != Generic {
		t.Errorf("Resolve(e-mail) = %s, want generic", got)
	}
}

func TestEveryCategoryHasNameAndLabels(t *testing.T) {
	for _, c := range All() {
		parsed, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%s): %v", c, err)
		}
		if parsed != c {
			t.Errorf("Parse(%s) = %s", c, parsed)
		}
		if c != Generic && len(Labels(c)) == 0 {
			t.Errorf("category %s has no labels", c)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("banana"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestIsLongForm(t *testing.T) {
	for _, c := range All() {
		if c.IsLongForm() != (c == LongForm) {
			t.Errorf("%s.IsLongForm() = %v", c, c.IsLongForm())
		}
	}
}
