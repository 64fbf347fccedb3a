package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.verbose)

			l.Debug("debug record", "pool_size", 94)
			l.Info("info record")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug record")))
			assert.Contains(t, buf.String(), "info record")
		})
	}
}
