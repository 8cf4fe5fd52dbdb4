package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/tsjs/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), opts)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tsjsrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skipTypeCheck: true\n"), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, opts.SkipTypeCheck)
	assert.Equal(t, ".js", opts.OutputSuffix)
}
