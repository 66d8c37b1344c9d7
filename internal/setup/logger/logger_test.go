package logger

import (
	"bytes"
	"testing"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"", false, true},
		{"nonsense", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.level)

			log.Debug().Msg("debug-line")
			log.Info().Msg("info-line")

			if got := bytes.Contains(buf.Bytes(), []byte("debug-line")); got != tt.debugSeen {
				t.Errorf("debug seen = %v, want %v", got, tt.debugSeen)
			}
			if got := bytes.Contains(buf.Bytes(), []byte("info-line")); got != tt.infoSeen {
				t.Errorf("info seen = %v, want %v", got, tt.infoSeen)
			}
		})
	}
}
