package helpers

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/typecmd/internal/domain"
)

func TestPromptForYesNo(t *testing.T) {
	tests := []struct {
		input    string
		def      bool
		expected bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", false, false},
		{"maybe\n", true, false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := PromptForYesNo(&out, bufio.NewReader(strings.NewReader(tt.input)), "Continue?", tt.def)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Continue? [")
	}
}

func TestConfigMapRoundTrip(t *testing.T) {
	cfg := domain.Config{
		ConfigFormatVersion: "1",
		History:             domain.HistorySettings{Backend: "file", File: "/tmp/h", MaxSize: 5},
		Display:             domain.DisplaySettings{Color: true},
	}

	m, err := ConfigToMap(cfg)
	require.NoError(t, err)

	value, ok := TraverseNestedMap(m, []string{"history", "max_size"})
	require.True(t, ok)
	assert.Equal(t, 5, value)

	_, ok = TraverseNestedMap(m, []string{"history", "nope"})
	assert.False(t, ok)

	parsed, err := ParseYAMLValue("12")
	require.NoError(t, err)
	require.True(t, SetNestedMapValue(m, []string{"history", "max_size"}, parsed))
	assert.False(t, SetNestedMapValue(m, []string{"history", "unknown"}, 1))
	assert.False(t, SetNestedMapValue(m, []string{"display", "color", "deeper"}, 1))

	updated, err := MapToConfig(m)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.History.MaxSize)
	assert.Equal(t, cfg.History.File, updated.History.File)
}

func TestParseYAMLValueFallsBackToString(t *testing.T) {
	value, err := ParseYAMLValue("[unclosed")
	require.NoError(t, err)
	assert.Equal(t, "[unclosed", value)

	value, err = ParseYAMLValue("false")
	require.NoError(t, err)
	assert.Equal(t, false, value)
}
