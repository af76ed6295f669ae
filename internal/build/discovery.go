// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package build drives per-package documentation builds: locating the doc
// root, invoking the external renderer, and cleaning build products.
package build

import (
	"os"
	"path/filepath"

	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/project"
)

// DiscoverDocDir finds the documentation root starting from startDir. The
// start may be the package's build root (the doc root is a doc/ child), the
// doc directory itself, or any subdirectory of it; the search climbs parent
// directories until a directory holding the project file is found.
func DiscoverDocDir(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.KindConfiguration, "cannot resolve directory %s", startDir)
	}

	for {
		if hasProjectFile(dir) {
			return dir, nil
		}
		if child := filepath.Join(dir, "doc"); hasProjectFile(child) {
			return child, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf(errors.KindConfiguration,
				"no documentation root found: %s is not inside a package with a doc/%s file",
				startDir, project.FileName)
		}
		dir = parent
	}
}

func hasProjectFile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, project.FileName))
	return err == nil && !info.IsDir()
}
