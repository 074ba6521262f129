package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(origVersion, origCommit, origDate) })
	SetVersionInfo(v, c, d)
}

func TestPrintVersion(t *testing.T) {
	withVersion(t, "1.2.3", "abc123", "2026-01-01")

	var buf bytes.Buffer
	printVersion(&buf, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"lcdstat v1.2.3",
		"commit: abc123",
		"built: 2026-01-01",
		"go: " + runtime.Version(),
		"os/arch: " + runtime.GOOS + "/" + runtime.GOARCH,
	}, lines)
}

func TestPrintVersion_Short(t *testing.T) {
	withVersion(t, "1.2.3", "abc123", "2026-01-01")

	var buf bytes.Buffer
	printVersion(&buf, true)
	assert.Equal(t, "1.2.3\n", buf.String())
	assert.Equal(t, "1.2.3", GetVersion())
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.0.0", "v1.0.0"},
		{"v1.0.0", "v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}
