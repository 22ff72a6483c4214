package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_GetSet(t *testing.T) {
	t.Parallel()
	m := Empty()
	m.Set(`maps_base_path`, `foo`)
	assert.Equal(t, `foo`, m.Get(`MAPS_BASE_PATH`))
	assert.Equal(t, `foo`, m.Get(`maps_base_path`))

	_, found := m.Lookup(`MISSING`)
	assert.False(t, found)
}

func TestMap_Merge(t *testing.T) {
	t.Parallel()
	m := FromMap(map[string]string{`A`: `1`, `B`: `2`})
	other := FromMap(map[string]string{`B`: `20`, `C`: `30`})

	m.Merge(other, false)
	assert.Equal(t, `2`, m.Get(`B`)) // kept
	assert.Equal(t, `30`, m.Get(`C`))

	m.Merge(other, true)
	assert.Equal(t, `20`, m.Get(`B`)) // overwritten
}

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAPS_BASE_PATH=from-file\nMAPS_VERBOSE=true\n"), 0o600))

	// OS value wins over the file value
	envs := FromMap(map[string]string{`MAPS_BASE_PATH`: `from-os`})
	assert.NoError(t, LoadDotEnv(envs, tempDir))
	assert.Equal(t, `from-os`, envs.Get(`MAPS_BASE_PATH`))
	assert.Equal(t, `true`, envs.Get(`MAPS_VERBOSE`))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Parallel()
	envs := Empty()
	assert.NoError(t, LoadDotEnv(envs, t.TempDir()))
	assert.Empty(t, envs.Keys())
}
