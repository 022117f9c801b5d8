package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
# demo overrides
BREAKOUT_SCENE=points
export BREAKOUT_MODEL="assets/models/pyramid/pyramid.gltf"
BREAKOUT_LOG_LEVEL = 'debug'
=nokey
garbage
EMPTY=
`

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	vars, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"BREAKOUT_SCENE":     "points",
		"BREAKOUT_MODEL":     "assets/models/pyramid/pyramid.gltf",
		"BREAKOUT_LOG_LEVEL": "debug",
		"EMPTY":              "",
	}, vars)
}

func TestReadMissing(t *testing.T) {
	vars, err := Read(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestLoadKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BREAKOUT_TEST_A=file\nBREAKOUT_TEST_B=file\n"), 0o644))

	t.Setenv("BREAKOUT_TEST_A", "env")
	t.Setenv("BREAKOUT_TEST_B", "")
	require.NoError(t, os.Unsetenv("BREAKOUT_TEST_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "env", os.Getenv("BREAKOUT_TEST_A"))
	assert.Equal(t, "file", os.Getenv("BREAKOUT_TEST_B"))
}
