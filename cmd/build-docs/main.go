// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// build-docs is the CLI for building single-package previews of stack
// documentation.
//
// Usage:
//
//	build-docs build [-W] [-n]
//	build-docs clean
//	build-docs help [topic]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"grimm.is/stackdocs/internal/build"
	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/project"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// rendererFailure carries the renderer's exit code to main so the process
// exits with the same code.
type rendererFailure struct {
	code int
}

func (e *rendererFailure) Error() string {
	return fmt.Sprintf("renderer exited with code %d", e.code)
}

type globalOptions struct {
	rootDir string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "build-docs",
		Short: "build-docs builds single-package previews of stack documentation",
		Long: "build-docs compiles one package's documentation with the " +
			"configured renderer. Single-package builds warn about references " +
			"into other packages; that is expected, since the rest of the " +
			"documentation set is not present.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.rootDir, "dir", "d", ".",
		"Root directory to search for the documentation root. The current "+
			"directory works when it is the package root, the doc/ directory, "+
			"or any subdirectory of doc/.")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose output (debug-level logging).")

	cmd.AddCommand(newBuildCmd(opts))
	cmd.AddCommand(newCleanCmd(opts))

	return cmd
}

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var warningIsError, nitpicky bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build documentation as HTML",
		Long: "Build the package's documentation. The HTML site is written " +
			"to the doc root's " + project.BuildDirName + "/html directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			docDir, err := build.DiscoverDocDir(opts.rootDir)
			if err != nil {
				return err
			}
			cfg, err := project.Load(docDir)
			if err != nil {
				return err
			}
			if _, err := build.WriteAPIRef(docDir, cfg); err != nil {
				return err
			}

			code, err := build.Run(cmd.Context(), docDir, cfg, build.Options{
				WarningIsError: warningIsError,
				Nitpicky:       nitpicky,
				Stdout:         cmd.OutOrStdout(),
				Stderr:         cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &rendererFailure{code: code}
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Documentation built in "+docDir))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&warningIsError, "warning-is-error", "W", false,
		"Treat warnings as errors.")
	cmd.Flags().BoolVarP(&nitpicky, "nitpicky", "n", false,
		"Activate the renderer's nitpicky mode.")

	return cmd
}

func newCleanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean documentation build products",
		Long: "Remove build products from the package's doc/ directory: the " +
			project.BuildDirName + " directory and the API-reference output " +
			"directory. Useful after a failed build or before a fresh one.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			docDir, err := build.DiscoverDocDir(opts.rootDir)
			if err != nil {
				return err
			}

			apiDir := project.DefaultAPIDirName
			if cfg, err := project.Load(docDir); err == nil {
				apiDir = cfg.APIDir
			}

			if err := build.Clean(docDir, apiDir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Cleaned documentation build products"))
			return nil
		},
	}
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	var failure *rendererFailure
	if errors.As(err, &failure) {
		os.Exit(failure.code)
	}

	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	os.Exit(1)
}
