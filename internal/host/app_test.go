// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grimm.is/stackdocs/internal/docmodel"
)

func TestRelativeURI(t *testing.T) {
	app := NewApp()
	cases := []struct {
		from, to string
		want     string
	}{
		{"index", "tasks/foo/index", "tasks/foo/index.html"},
		{"guides/pipeline", "tasks/foo/index", "../tasks/foo/index.html"},
		{"tasks/foo/index", "tasks/bar/index", "../bar/index.html"},
		{"tasks/foo/index", "index", "../../index.html"},
		{"a", "b", "b.html"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, app.RelativeURI(c.from, c.to), "from %q to %q", c.from, c.to)
	}
}

func TestEnvAttrs(t *testing.T) {
	env := NewEnv()
	assert.NotEmpty(t, env.BuildID)

	_, ok := env.Attr("missing")
	assert.False(t, ok)

	env.SetAttr("key", 42)
	v, ok := env.Attr("key")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestFreshEnvPerApp(t *testing.T) {
	a := NewApp()
	a.Env.SetAttr("key", "value")

	b := NewApp()
	_, ok := b.Env.Attr("key")
	assert.False(t, ok, "build state must not leak between invocations")
	assert.NotEqual(t, a.Env.BuildID, b.Env.BuildID)
}

func TestUnknownRoleAndDirective(t *testing.T) {
	app := NewApp()
	doc := app.AddDocument("d1")

	_, err := app.RunRole(doc, "nope", "raw")
	assert.Error(t, err)

	err = app.RunDirective(doc, "nope", nil, nil, nil)
	assert.Error(t, err)
}

func TestDirectiveAppendsNodes(t *testing.T) {
	app := NewApp()
	app.AddDirective("note", func(ctx *DirectiveContext) ([]docmodel.Node, error) {
		return []docmodel.Node{&docmodel.Text{Value: ctx.Args[0]}}, nil
	})

	doc := app.AddDocument("d1")
	require.NoError(t, app.RunDirective(doc, "note", []string{"hello"}, nil, nil))
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "hello", doc.Nodes[0].(*docmodel.Text).Value)
}

func TestResolveFiresPerDocument(t *testing.T) {
	app := NewApp()
	app.AddDocument("d1")
	app.AddDocument("d2")

	var visited []string
	app.ConnectDoctreeResolved(func(_ *App, doc *docmodel.Document) {
		visited = append(visited, doc.Name)
	})

	app.Resolve()
	assert.Equal(t, []string{"d1", "d2"}, visited)
}

func TestWarningsRecorded(t *testing.T) {
	app := NewApp()
	app.Warnf("d1", 3, "could not find %s", "pkg.mod.Foo")

	warnings := app.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, Warning{Docname: "d1", Line: 3, Message: "could not find pkg.mod.Foo"}, warnings[0])
}
