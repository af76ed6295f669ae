// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package build

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/doxygen"
	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/project"
)

// APIRefFileName is the listing page generated inside the API directory.
const APIRefFileName = "index.rst"

// WriteAPIRef generates the API-reference listing page from the project's
// Doxygen tag files, one entry per compound or member name. The page lands
// in the configured API directory, which clean removes alongside _build.
// Returns the written path, or "" when the project configures no tag files.
func WriteAPIRef(docDir string, cfg *project.Config) (string, error) {
	if len(cfg.DoxygenTags) == 0 {
		return "", nil
	}

	var names []string
	for _, tag := range cfg.DoxygenTags {
		path := tag
		if !filepath.IsAbs(path) {
			path = filepath.Join(docDir, tag)
		}
		entities, err := doxygen.TagEntityNames(path)
		if err != nil {
			return "", err
		}
		names = append(names, entities...)
	}
	sort.Strings(names)

	var b strings.Builder
	title := apiRefTitle(cfg)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	for _, name := range names {
		b.WriteString("- ``" + name + "``\n")
	}

	apiName := cfg.APIDir
	if apiName == "" {
		apiName = project.DefaultAPIDirName
	}
	apiDir := filepath.Join(docDir, apiName)
	if err := os.MkdirAll(apiDir, 0o755); err != nil {
		return "", errors.Wrapf(err, errors.KindInternal, "failed to create API directory %s", apiDir)
	}

	path := filepath.Join(apiDir, APIRefFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", errors.Wrapf(err, errors.KindInternal, "failed to write API listing %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"component": "build",
		"entities":  len(names),
	}).Debugf("wrote API listing %s", path)
	return path, nil
}

// apiRefTitle prefers the project title, then the package name, for the
// listing page heading.
func apiRefTitle(cfg *project.Config) string {
	if cfg.Title != "" {
		return cfg.Title + " API reference"
	}
	if cfg.Package != "" {
		return cfg.Package + " API reference"
	}
	return "API reference"
}
