// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package project loads the doc.hcl project file that marks a package's
// documentation root and configures the external renderer.
package project

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"grimm.is/stackdocs/internal/errors"
)

// FileName is the project file that marks a documentation root.
const FileName = "doc.hcl"

// Default build output locations inside the doc root.
const (
	BuildDirName      = "_build"
	DefaultAPIDirName = "api"
)

// Config is the parsed doc.hcl project file.
type Config struct {
	// Title of the documentation set.
	Title string `hcl:"title,optional"`

	// Package is the documented package's name.
	Package string `hcl:"package,optional"`

	// APIDir is the API-reference output directory inside the doc root,
	// removed by clean alongside _build.
	APIDir string `hcl:"api_dir,optional"`

	// DoxygenTags lists Doxygen tag files consumed for API name listings.
	DoxygenTags []string `hcl:"doxygen_tags,optional"`

	Renderer *RendererConfig `hcl:"renderer,block"`
	Toctree  *ToctreeConfig  `hcl:"toctree,block"`
}

// RendererConfig selects the external rendering command the build drives.
type RendererConfig struct {
	Command string   `hcl:"command,optional"`
	Args    []string `hcl:"args,optional"`
}

// ToctreeConfig configures package-tree navigation roots.
type ToctreeConfig struct {
	PackagesRoot string   `hcl:"packages_root,optional"`
	ModulesRoot  string   `hcl:"modules_root,optional"`
	Skip         []string `hcl:"skip,optional"`
}

// Load reads and validates the project file in docDir, applying defaults.
func Load(docDir string) (*Config, error) {
	path := filepath.Join(docDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration, "failed to read project file %s", path)
	}

	var cfg Config
	if err := hclsimple.Decode(FileName, data, nil, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration, "failed to parse project file %s", path)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.APIDir == "" {
		c.APIDir = DefaultAPIDirName
	}
	if c.Renderer == nil {
		c.Renderer = &RendererConfig{}
	}
	if c.Renderer.Command == "" {
		c.Renderer.Command = "sphinx-build"
	}
	if len(c.Renderer.Args) == 0 {
		c.Renderer.Args = []string{"-b", "html", ".", filepath.Join(BuildDirName, "html")}
	}
	if c.Toctree == nil {
		c.Toctree = &ToctreeConfig{}
	}
	if c.Toctree.PackagesRoot == "" {
		c.Toctree.PackagesRoot = "packages"
	}
	if c.Toctree.ModulesRoot == "" {
		c.Toctree.ModulesRoot = "modules"
	}
}
