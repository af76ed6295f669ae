// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package xref

import (
	"strings"

	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/host"
)

// Role names registered with the host.
const (
	TaskRoleName        = "task"
	ConfigRoleName      = "config"
	ConfigFieldRoleName = "config-field"
)

// Setup registers the reference roles, their placeholder node kinds, and
// the doctree-resolved callbacks that rewrite placeholders into links.
func Setup(app *host.App) {
	app.AddRole(TaskRoleName, taskRole)
	app.AddRole(ConfigRoleName, configRole)
	app.AddRole(ConfigFieldRoleName, configFieldRole)

	app.AddNode("pending_task_xref")
	app.AddNode("pending_config_xref")
	app.AddNode("pending_configfield_xref")

	app.ConnectDoctreeResolved(resolvePendingTaskXrefs)
	app.ConnectDoctreeResolved(resolvePendingConfigXrefs)
	app.ConnectDoctreeResolved(resolvePendingConfigFieldXrefs)
}

// taskRole leaves a pending placeholder that resolvePendingTaskXrefs
// rewrites once every document has been parsed.
func taskRole(ctx *host.RoleContext) []docmodel.Node {
	return []docmodel.Node{&docmodel.PendingTaskXref{
		RawSource: ctx.RawText,
		Docname:   ctx.Docname,
		Line:      ctx.Line,
	}}
}

func configRole(ctx *host.RoleContext) []docmodel.Node {
	return []docmodel.Node{&docmodel.PendingConfigXref{
		RawSource: ctx.RawText,
		Docname:   ctx.Docname,
		Line:      ctx.Line,
	}}
}

func configFieldRole(ctx *host.RoleContext) []docmodel.Node {
	return []docmodel.Node{&docmodel.PendingConfigFieldXref{
		RawSource: ctx.RawText,
		Docname:   ctx.Docname,
		Line:      ctx.Line,
	}}
}

// resolvePendingTaskXrefs rewrites pending task references into links to the
// locations of task and configurable topic declarations.
func resolvePendingTaskXrefs(app *host.App, doc *docmodel.Document) {
	topics := Topics(app.Env)

	docmodel.ReplaceNodes(doc, func(n docmodel.Node) []docmodel.Node {
		node, ok := n.(*docmodel.PendingTaskXref)
		if !ok {
			return nil
		}

		content := ParseRole(node.RawSource)
		taskID := FormatTaskID(content.Ref)
		label := docmodel.NewLiteralText(content.DisplayText())

		if rec, ok := topics.Lookup(taskID); ok {
			return []docmodel.Node{linkTo(app, doc.Name, rec, label)}
		}

		app.Warnf(node.Docname, node.Line, "task role could not find a reference to %s", content.Ref)
		return []docmodel.Node{label}
	})
}

// resolvePendingConfigXrefs rewrites pending config references. Config
// topics are registered in the same registry namespace as task topics, so
// the lookup goes through the shared registry.
func resolvePendingConfigXrefs(app *host.App, doc *docmodel.Document) {
	topics := Topics(app.Env)

	docmodel.ReplaceNodes(doc, func(n docmodel.Node) []docmodel.Node {
		node, ok := n.(*docmodel.PendingConfigXref)
		if !ok {
			return nil
		}

		content := ParseRole(node.RawSource)
		configID := FormatConfigID(content.Ref)
		label := docmodel.NewLiteralText(content.DisplayText())

		if rec, ok := topics.Lookup(configID); ok {
			return []docmodel.Node{linkTo(app, doc.Name, rec, label)}
		}

		app.Warnf(node.Docname, node.Line, "config role could not find a reference to %s", content.Ref)
		return []docmodel.Node{label}
	})
}

// resolvePendingConfigFieldXrefs rewrites pending configuration-field
// references. The dotted reference splits into the config class (all but
// the last component) and the field name (the last component). The fallback
// for an unknown field shows the bare field name.
func resolvePendingConfigFieldXrefs(app *host.App, doc *docmodel.Document) {
	fields := ConfigFields(app.Env)

	docmodel.ReplaceNodes(doc, func(n docmodel.Node) []docmodel.Node {
		node, ok := n.(*docmodel.PendingConfigFieldXref)
		if !ok {
			return nil
		}

		content := ParseRole(node.RawSource)
		parts := strings.Split(content.Ref, ".")
		fieldName := parts[len(parts)-1]
		classNamespace := strings.Join(parts[:len(parts)-1], ".")
		configFieldID := FormatConfigFieldID(classNamespace, fieldName)

		if rec, ok := fields.Lookup(configFieldID); ok {
			label := docmodel.NewLiteralText(content.DisplayText())
			return []docmodel.Node{linkTo(app, doc.Name, rec, label)}
		}

		app.Warnf(node.Docname, node.Line, "config-field role could not find a reference to %s", content.Ref)
		return []docmodel.Node{docmodel.NewLiteralText(fieldName)}
	})
}

func linkTo(app *host.App, fromDoc string, rec *TopicRecord, label *docmodel.Literal) *docmodel.Reference {
	return &docmodel.Reference{
		RefDoc: rec.Docname,
		RefURI: app.RelativeURI(fromDoc, rec.Docname) + "#" + rec.AnchorID,
		Nodes:  []docmodel.Node{label},
	}
}
