package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	saved := Properties
	t.Cleanup(func() { Properties = saved })
}

func TestParse(t *testing.T) {
	src := "# diagnostics\n" +
		"range-checks yes\n" +
		"\n" +
		"comod-checks off\n" +
		"log-level  warn\n"
	p, err := parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, p.RangeChecks)
	assert.False(t, p.ComodChecks)
	assert.Equal(t, "warn", p.LogLevel)
}

func TestParseDefaults(t *testing.T) {
	p, err := parse(strings.NewReader("unknown-key 1\n"))
	require.NoError(t, err)
	assert.Equal(t, defaults(), p)
}

func TestParseInvalidBool(t *testing.T) {
	_, err := parse(strings.NewReader("range-checks maybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range-checks")
}

func TestSetup(t *testing.T) {
	restore(t)
	path := filepath.Join(t.TempDir(), "unboxed.conf")
	require.NoError(t, os.WriteFile(path, []byte("range-checks true\n"), 0o644))

	require.NoError(t, Setup(path))
	assert.True(t, Properties.RangeChecks)
	assert.True(t, Properties.ComodChecks)

	assert.Error(t, Setup(filepath.Join(t.TempDir(), "missing.conf")))
}

func TestLoadEnv(t *testing.T) {
	restore(t)
	t.Setenv("UNBOXED_COMOD_CHECKS", "false")
	t.Setenv("UNBOXED_RANGE_CHECKS", "1")

	require.NoError(t, LoadEnv())
	assert.False(t, Properties.ComodChecks)
	assert.True(t, Properties.RangeChecks)

	t.Setenv("UNBOXED_LOG_LEVEL", "chatty")
	assert.Error(t, LoadEnv())
	assert.False(t, Properties.ComodChecks)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "UNBOXED_RANGE_CHECKS", envName("range-checks"))
}
