package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "extref.yml")
	content := `log:
  level: debug
repositories:
  - doi: 10.5281/zenodo.46266
    root: /data/proj
    url: http://z/a.zip
    top-directory: repo-abc
  - doi: 10.1000/other
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	config, err := GetConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	require.Len(t, config.Repositories, 2)
	assert.Equal(t, "10.5281/zenodo.46266", config.Repositories[0].DOI)
	assert.Equal(t, "/data/proj", config.Repositories[0].Root)
	assert.Equal(t, "http://z/a.zip", config.Repositories[0].URL)
	assert.Equal(t, "repo-abc", config.Repositories[0].TopDirectory)
	assert.Equal(t, "10.1000/other", config.Repositories[1].DOI)
}

func TestGetConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "extref.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("repositories: []\n"), 0o644))

	config, err := GetConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "info", config.Log.Level)
}

func TestGetConfig_MissingFile(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "gone.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot load configuration")
}
