// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package toctree implements package-tree navigation: directives that list
// the direct-child index pages of a packages/ or modules/ root directory.
package toctree

import (
	"sort"
	"strings"

	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/host"
	"grimm.is/stackdocs/internal/project"
)

// Directive names registered with the host.
const (
	PackageToctreeDirective = "package-toctree"
	ModuleToctreeDirective  = "module-toctree"
)

// Default root directories the directives list.
const (
	DefaultPackagesRoot = "packages"
	DefaultModulesRoot  = "modules"
)

// Setup registers the toctree directives. The project's toctree block, when
// present, supplies the default roots and a baseline skip list; per-directive
// options override the root and extend the skip list. A nil cfg keeps the
// built-in defaults.
func Setup(app *host.App, cfg *project.ToctreeConfig) {
	packagesRoot := DefaultPackagesRoot
	modulesRoot := DefaultModulesRoot
	var baseSkip []string
	if cfg != nil {
		if cfg.PackagesRoot != "" {
			packagesRoot = cfg.PackagesRoot
		}
		if cfg.ModulesRoot != "" {
			modulesRoot = cfg.ModulesRoot
		}
		baseSkip = cfg.Skip
	}

	app.AddDirective(PackageToctreeDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runToctreeDirective(ctx, packagesRoot, baseSkip)
	})
	app.AddDirective(ModuleToctreeDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runToctreeDirective(ctx, modulesRoot, baseSkip)
	})
}

func runToctreeDirective(ctx *host.DirectiveContext, defaultRoot string, baseSkip []string) ([]docmodel.Node, error) {
	root := defaultRoot
	if v, ok := ctx.Options["root"]; ok && v != "" {
		root = v
	}
	skip := skipSet(ctx.Options["skip"])
	for _, name := range baseSkip {
		skip[name] = true
	}

	pages := FilterIndexPages(ctx.App.DocNames(), root)

	list := &docmodel.BulletList{}
	for _, page := range pages {
		name := entryName(page)
		if skip[name] {
			continue
		}
		ref := &docmodel.Reference{
			RefDoc: page,
			RefURI: ctx.App.RelativeURI(ctx.Docname, page),
			Nodes:  []docmodel.Node{&docmodel.Text{Value: name}},
		}
		list.Items = append(list.Items, &docmodel.ListItem{Nodes: []docmodel.Node{ref}})
	}

	return []docmodel.Node{list}, nil
}

// FilterIndexPages returns the docnames that are index pages of direct
// children of rootDir: exactly "<rootDir>/<name>/index". Deeper-nested
// index pages and pages outside rootDir are excluded. The result is sorted.
func FilterIndexPages(docNames []string, rootDir string) []string {
	prefix := rootDir + "/"

	var pages []string
	for _, docname := range docNames {
		rest, ok := strings.CutPrefix(docname, prefix)
		if !ok {
			continue
		}
		name, page, ok := strings.Cut(rest, "/")
		if !ok || name == "" || page != "index" {
			continue
		}
		pages = append(pages, docname)
	}
	sort.Strings(pages)
	return pages
}

// entryName is the display label for an index page: the directory holding
// it, e.g. "acme.packageA" for "modules/acme.packageA/index".
func entryName(page string) string {
	parts := strings.Split(page, "/")
	if len(parts) < 2 {
		return page
	}
	return parts[len(parts)-2]
}

func skipSet(opt string) map[string]bool {
	set := make(map[string]bool)
	for _, name := range strings.Split(opt, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = true
		}
	}
	return set
}
