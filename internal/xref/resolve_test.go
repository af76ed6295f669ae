// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/host"
)

func newTestApp() *host.App {
	app := host.NewApp()
	Setup(app)
	return app
}

func registerTask(app *host.App, docname, fqn string) *TopicRecord {
	rec := &TopicRecord{
		TargetID:           FormatTaskID(fqn),
		Docname:            docname,
		AnchorID:           FormatTaskID(fqn),
		Kind:               TopicTask,
		FullyQualifiedName: fqn,
	}
	Topics(app.Env).Register(rec)
	return rec
}

func addReference(t *testing.T, app *host.App, doc *docmodel.Document, role, raw string) *docmodel.Paragraph {
	t.Helper()
	nodes, err := app.RunRole(doc, role, raw)
	require.NoError(t, err)
	para := &docmodel.Paragraph{Nodes: nodes}
	doc.Nodes = append(doc.Nodes, para)
	return para
}

func TestResolveRoundTrip(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("tasks/fooTask/index")
	d2 := app.AddDocument("guides/pipeline")

	rec := registerTask(app, d1.Name, "pkg.mod.FooTask")
	para := addReference(t, app, d2, TaskRoleName, "pkg.mod.FooTask")

	app.Resolve()

	require.Len(t, para.Nodes, 1)
	ref, ok := para.Nodes[0].(*docmodel.Reference)
	require.True(t, ok, "placeholder should resolve to a hyperlink")
	assert.Equal(t, d1.Name, ref.RefDoc)
	assert.Equal(t, "../tasks/fooTask/index.html#"+rec.AnchorID, ref.RefURI)

	label := ref.Nodes[0].(*docmodel.Literal)
	assert.Equal(t, "pkg.mod.FooTask", label.Nodes[0].(*docmodel.Text).Value)
	assert.Empty(t, app.Warnings())
}

func TestResolveLastComponentDisplay(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("d1")
	d2 := app.AddDocument("d2")

	registerTask(app, d1.Name, "pkg.mod.FooTask")
	para := addReference(t, app, d2, TaskRoleName, "~pkg.mod.FooTask")

	app.Resolve()

	ref := para.Nodes[0].(*docmodel.Reference)
	label := ref.Nodes[0].(*docmodel.Literal)
	assert.Equal(t, "FooTask", label.Nodes[0].(*docmodel.Text).Value)
}

func TestResolveCustomDisplay(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("d1")

	registerTask(app, d1.Name, "pkg.mod.FooTask")
	para := addReference(t, app, d1, TaskRoleName, "the Foo runner <pkg.mod.FooTask>")

	app.Resolve()

	ref := para.Nodes[0].(*docmodel.Reference)
	label := ref.Nodes[0].(*docmodel.Literal)
	assert.Equal(t, "the Foo runner", label.Nodes[0].(*docmodel.Text).Value)
}

func TestResolveUnknownTargetFallsBack(t *testing.T) {
	app := newTestApp()
	doc := app.AddDocument("d1")

	para := addReference(t, app, doc, TaskRoleName, "pkg.mod.MissingTask")

	app.Resolve()

	require.Len(t, para.Nodes, 1)
	label, ok := para.Nodes[0].(*docmodel.Literal)
	require.True(t, ok, "unknown target should fall back to a literal label")
	assert.Equal(t, "pkg.mod.MissingTask", label.Nodes[0].(*docmodel.Text).Value)

	warnings := app.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "pkg.mod.MissingTask")
	assert.Equal(t, "d1", warnings[0].Docname)
}

func TestResolveConfigUsesSharedRegistry(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("d1")
	d2 := app.AddDocument("d2")

	// Config topics are stored in the shared topic registry under the
	// config ID namespace.
	rec := &TopicRecord{
		TargetID:           FormatConfigID("pkg.mod.FooConfig"),
		Docname:            d1.Name,
		AnchorID:           FormatConfigID("pkg.mod.FooConfig"),
		Kind:               TopicConfig,
		FullyQualifiedName: "pkg.mod.FooConfig",
	}
	Topics(app.Env).Register(rec)

	para := addReference(t, app, d2, ConfigRoleName, "~pkg.mod.FooConfig")

	app.Resolve()

	ref, ok := para.Nodes[0].(*docmodel.Reference)
	require.True(t, ok)
	assert.Equal(t, "d1.html#"+rec.AnchorID, ref.RefURI)
}

func TestResolveConfigFieldFallbackUsesBareFieldName(t *testing.T) {
	app := newTestApp()
	doc := app.AddDocument("d1")

	para := addReference(t, app, doc, ConfigFieldRoleName, "Custom label <pkg.mod.FooConfig.threshold>")

	app.Resolve()

	// The config-field fallback shows the bare field name, not the
	// computed display text.
	label, ok := para.Nodes[0].(*docmodel.Literal)
	require.True(t, ok)
	assert.Equal(t, "threshold", label.Nodes[0].(*docmodel.Text).Value)
	require.Len(t, app.Warnings(), 1)
	assert.Contains(t, app.Warnings()[0].Message, "pkg.mod.FooConfig.threshold")
}

func TestResolveConfigFieldFound(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("d1")
	d2 := app.AddDocument("d2")

	id := FormatConfigFieldID("pkg.mod.FooConfig", "threshold")
	ConfigFields(app.Env).Register(&TopicRecord{
		TargetID:           id,
		Docname:            d1.Name,
		AnchorID:           id,
		Kind:               TopicConfig,
		FullyQualifiedName: "pkg.mod.FooConfig.threshold",
	})

	para := addReference(t, app, d2, ConfigFieldRoleName, "~pkg.mod.FooConfig.threshold")

	app.Resolve()

	ref, ok := para.Nodes[0].(*docmodel.Reference)
	require.True(t, ok)
	assert.Equal(t, "d1.html#"+id, ref.RefURI)
	label := ref.Nodes[0].(*docmodel.Literal)
	assert.Equal(t, "threshold", label.Nodes[0].(*docmodel.Text).Value)
}

func TestResolveTwiceIsNoOp(t *testing.T) {
	app := newTestApp()
	doc := app.AddDocument("d1")

	registerTask(app, doc.Name, "pkg.mod.FooTask")
	para := addReference(t, app, doc, TaskRoleName, "pkg.mod.FooTask")

	app.Resolve()
	app.Resolve()

	require.Len(t, para.Nodes, 1)
	assert.IsType(t, &docmodel.Reference{}, para.Nodes[0])
	assert.Empty(t, app.Warnings())
}

func TestResolveOrderIndependent(t *testing.T) {
	app := newTestApp()
	d1 := app.AddDocument("d1")

	registerTask(app, d1.Name, "pkg.mod.FooTask")
	p1 := addReference(t, app, d1, TaskRoleName, "~pkg.mod.FooTask")
	p2 := addReference(t, app, d1, TaskRoleName, "pkg.mod.FooTask")

	app.Resolve()

	assert.IsType(t, &docmodel.Reference{}, p1.Nodes[0])
	assert.IsType(t, &docmodel.Reference{}, p2.Nodes[0])
}

func TestDuplicateRegistrationLastWriteWins(t *testing.T) {
	app := newTestApp()

	registerTask(app, "d1", "pkg.mod.FooTask")
	registerTask(app, "d2", "pkg.mod.FooTask")

	rec, ok := Topics(app.Env).Lookup(FormatTaskID("pkg.mod.FooTask"))
	assert.True(t, ok)
	assert.Equal(t, "d2", rec.Docname)
}
