// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package build

import (
	"context"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/project"
)

// Options are the per-invocation build switches.
type Options struct {
	// WarningIsError makes the renderer treat warnings as errors.
	WarningIsError bool

	// Nitpicky activates the renderer's nitpicky reference checking.
	Nitpicky bool

	// Stdout and Stderr receive the renderer's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Run invokes the configured external renderer in docDir and returns its
// exit code. The renderer's nonzero exit code is passed through unchanged;
// an error is returned only when the renderer could not be started at all.
func Run(ctx context.Context, docDir string, cfg *project.Config, opts Options) (int, error) {
	args := append([]string{}, cfg.Renderer.Args...)
	if opts.WarningIsError {
		args = append(args, "-W")
	}
	if opts.Nitpicky {
		args = append(args, "-n")
	}

	logrus.WithFields(logrus.Fields{
		"component": "build",
		"renderer":  cfg.Renderer.Command,
		"dir":       docDir,
	}).Debugf("running renderer with args %v", args)

	cmd := exec.CommandContext(ctx, cfg.Renderer.Command, args...)
	cmd.Dir = docDir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, errors.Wrapf(err, errors.KindUnavailable, "failed to run renderer %s", cfg.Renderer.Command)
}
