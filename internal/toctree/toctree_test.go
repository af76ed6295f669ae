// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package toctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/host"
	"grimm.is/stackdocs/internal/project"
)

func TestFilterIndexPages(t *testing.T) {
	docNames := []string{
		"index",
		"basedir/A/index",
		"basedir/B/index",
		"basedir/B/subdir/index",
		"otherdir/C/index",
	}

	got := FilterIndexPages(docNames, "basedir")
	assert.Equal(t, []string{"basedir/A/index", "basedir/B/index"}, got)
}

func TestFilterIndexPagesNoMatches(t *testing.T) {
	assert.Empty(t, FilterIndexPages([]string{"index", "basedir/notindex"}, "basedir"))
}

func TestModuleToctreeDirective(t *testing.T) {
	app := host.NewApp()
	Setup(app, nil)

	index := app.AddDocument("index")
	app.AddDocument("modules/acme.packageA/index")
	app.AddDocument("modules/acme.packageB/index")
	app.AddDocument("modules/acme.skipthis/index")
	app.AddDocument("modules/acme.packageB/details")

	err := app.RunDirective(index, ModuleToctreeDirective, nil, nil,
		map[string]string{"skip": "acme.skipthis"})
	require.NoError(t, err)

	require.Len(t, index.Nodes, 1)
	list := index.Nodes[0].(*docmodel.BulletList)
	require.Len(t, list.Items, 2)

	var entries [][2]string
	for _, item := range list.Items {
		ref := item.Nodes[0].(*docmodel.Reference)
		entries = append(entries, [2]string{ref.Nodes[0].(*docmodel.Text).Value, ref.RefURI})
	}
	assert.Equal(t, [][2]string{
		{"acme.packageA", "modules/acme.packageA/index.html"},
		{"acme.packageB", "modules/acme.packageB/index.html"},
	}, entries)
}

func TestPackageToctreeRootOption(t *testing.T) {
	app := host.NewApp()
	Setup(app, nil)

	index := app.AddDocument("index")
	app.AddDocument("pkgs/A/index")

	err := app.RunDirective(index, PackageToctreeDirective, nil, nil,
		map[string]string{"root": "pkgs"})
	require.NoError(t, err)

	list := index.Nodes[0].(*docmodel.BulletList)
	require.Len(t, list.Items, 1)
}

func TestToctreeProjectConfigDefaults(t *testing.T) {
	app := host.NewApp()
	Setup(app, &project.ToctreeConfig{
		ModulesRoot: "mods",
		Skip:        []string{"acme.skipthis"},
	})

	index := app.AddDocument("index")
	app.AddDocument("mods/acme.packageA/index")
	app.AddDocument("mods/acme.skipthis/index")
	app.AddDocument("modules/acme.packageB/index")

	err := app.RunDirective(index, ModuleToctreeDirective, nil, nil, nil)
	require.NoError(t, err)

	list := index.Nodes[0].(*docmodel.BulletList)
	require.Len(t, list.Items, 1)
	ref := list.Items[0].Nodes[0].(*docmodel.Reference)
	assert.Equal(t, "mods/acme.packageA/index", ref.RefDoc)
}

func TestToctreeRootOptionOverridesProjectConfig(t *testing.T) {
	app := host.NewApp()
	Setup(app, &project.ToctreeConfig{PackagesRoot: "pkgs"})

	index := app.AddDocument("index")
	app.AddDocument("pkgs/A/index")
	app.AddDocument("elsewhere/B/index")

	err := app.RunDirective(index, PackageToctreeDirective, nil, nil,
		map[string]string{"root": "elsewhere"})
	require.NoError(t, err)

	list := index.Nodes[0].(*docmodel.BulletList)
	require.Len(t, list.Items, 1)
	ref := list.Items[0].Nodes[0].(*docmodel.Reference)
	assert.Equal(t, "elsewhere/B/index", ref.RefDoc)
}
