// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grimm.is/stackdocs/internal/errors"
)

const projectHCL = `
title   = "afw documentation"
package = "afw"
api_dir = "py-api"

doxygen_tags = ["cpp-api/doxygen.tag"]

renderer {
  command = "render-html"
  args    = ["--strict"]
}

toctree {
  modules_root = "modules"
  skip         = ["acme.skipthis"]
}
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeProject(t, projectHCL))
	require.NoError(t, err)

	assert.Equal(t, "afw documentation", cfg.Title)
	assert.Equal(t, "py-api", cfg.APIDir)
	assert.Equal(t, "render-html", cfg.Renderer.Command)
	assert.Equal(t, []string{"--strict"}, cfg.Renderer.Args)
	assert.Equal(t, []string{"acme.skipthis"}, cfg.Toctree.Skip)
	assert.Equal(t, "packages", cfg.Toctree.PackagesRoot, "unset root falls back to default")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeProject(t, "title = \"minimal\"\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIDirName, cfg.APIDir)
	assert.Equal(t, "sphinx-build", cfg.Renderer.Command)
	assert.NotEmpty(t, cfg.Renderer.Args)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.KindConfiguration, errors.GetKind(err))
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeProject(t, "title = {\n"))
	require.Error(t, err)
	assert.Equal(t, errors.KindConfiguration, errors.GetKind(err))
}
