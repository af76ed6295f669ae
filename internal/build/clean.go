// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package build

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/project"
)

// Clean removes build products from the doc root: the _build directory and
// the API-reference output directory. Missing directories are a quiet
// no-op.
func Clean(docDir, apiDir string) error {
	log := logrus.WithField("component", "build")

	for _, name := range []string{apiDir, project.BuildDirName} {
		dir := filepath.Join(docDir, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Debugf("did not clean up %q (missing)", dir)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, errors.KindInternal, "failed to remove %s", dir)
		}
		log.Debugf("cleaned up %q", dir)
	}
	return nil
}
