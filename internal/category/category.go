// Package category maps free-text input type labels onto canonical validation categories.
package category

import (
	"fmt"
	"sort"
	"strings"
)

type Category int

const (
	Generic Category = iota
	Email
	Phone
	Username
	FullName
	Institution
	Company
	Product
	Location
	Title
	JobTitle
	Tag
	Address
	Website
	Identity
	DateTime
	Numeric
	LongForm
)

var names = map[Category]string{
	Generic:     "generic",
	Email:       "email",
	Phone:       "phone",
	Username:    "username",
	FullName:    "full_name",
	Institution: "institution",
	Company:     "company",
	Product:     "product",
	Location:    "location",
	Title:       "title",
	JobTitle:    "job_title",
	Tag:         "tag",
	Address:     "address",
	Website:     "website",
	Identity:    "identity",
	DateTime:    "date_time",
	Numeric:     "numeric",
	LongForm:    "long_form",
}

var synonyms = map[Category][]string{
	Email:    {"alamat email", "email", "email address", "mail"},
	Phone:    {"nomor hp indonesia", "nomor hp", "nomor telepon", "phone", "phone number", "no hp", "mobile", "tel"},
	Username: {"username", "nama pengguna", "handle", "user id", "account name", "id pengguna"},
	FullName: {"nama lengkap", "nama", "full name", "name", "complete name", "nickname", "first name", "last name"},
	Institution: {"nama institusi", "nama lembaga", "institusi", "lembaga", "institution name",
		"organization name", "institution", "organization", "agency", "institute"},
	Company: {"nama perusahaan", "perusahaan", "company name", "company", "business name", "business", "corporate"},
	Product: {"nama produk", "product name", "produk", "product", "nama barang", "barang", "item name", "item",
		"nama item", "merchandise", "goods", "komoditas", "jenis barang"},
	Location: {"nama lokasi", "lokasi", "tempat", "location name", "location", "place", "venue", "spot", "area"},
	Title:    {"judul", "title", "subject", "headline", "caption", "topic"},
	JobTitle: {"pekerjaan", "job", "occupation", "profesi", "jabatan", "role", "peran", "posisi", "karir",
		"career", "job title"},
	Tag:      {"tag", "kategori", "category", "label", "keyword", "tags"},
	Address:  {"alamat", "address", "home address", "street address", "domicile"},
	Website:  {"website", "url", "link", "tautan", "situs", "domain", "homepage", "web"},
	Identity: {"nik", "ktp", "npwp", "nomor identitas", "identity number", "passport", "sim", "id card", "no ktp"},
	DateTime: {"tanggal", "date", "tanggal lahir", "dob", "birth date", "waktu", "time", "tgl", "tgl lahir"},
	Numeric:  {"umur", "age", "harga", "price", "gaji", "salary", "nominal", "amount", "jumlah", "biaya", "cost"},
	LongForm: {"text area", "teks area", "konten", "deskripsi", "blog", "cerita", "komentar", "content",
		"description", "story", "comment", "body", "message", "post", "article", "review", "summary"},
}

var lookup = buildLookup()

func buildLookup() map[string]Category {
	m := make(map[string]Category)
	for c, labels := range synonyms {
		for _, label := range labels {
			if prev, ok := m[label]; ok {
				panic(fmt.Sprintf("label %q registered for both %s and %s", label, prev, c))
			}
			m[label] = c
		}
	}
	return m
}

// Resolve never fails: unknown labels resolve to Generic.
func Resolve(label string) Category {
	if c, ok := lookup[strings.ToLower(strings.TrimSpace(label))]; ok {
		return c
	}
	return Generic
}

// Parse resolves a canonical category name such as "job_title".
func Parse(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == key {
			return c, nil
		}
	}
	return Generic, fmt.Errorf("unknown category %q", name)
}

func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// IsLongForm reports whether the category is exempt from the global length cap.
func (c Category) IsLongForm() bool {
	return c == LongForm
}

// Labels returns the accepted labels for c, sorted.
func Labels(c Category) []string {
	out := append([]string(nil), synonyms[c]...)
	sort.Strings(out)
	return out
}

// All returns every category in declaration order.
func All() []Category {
	out := make([]Category, 0, len(names))
	for c := Generic; c <= LongForm; c++ {
		out = append(out, c)
	}
	return out
}
