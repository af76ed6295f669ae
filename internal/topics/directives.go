// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package topics implements the directives that mark task, configurable,
// and config topic pages, populating the cross-reference registries that
// package xref resolves against.
package topics

import (
	"strings"

	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/errors"
	"grimm.is/stackdocs/internal/host"
	"grimm.is/stackdocs/internal/meta"
	"grimm.is/stackdocs/internal/xref"
)

// Directive names registered with the host.
const (
	TaskTopicDirective         = "task-topic"
	ConfigurableTopicDirective = "configurable-topic"
	ConfigTopicDirective       = "config-topic"
	ConfigFieldsDirective      = "config-fields"
)

// NoDescriptionFallback substitutes for an empty extracted summary.
const NoDescriptionFallback = "No description available."

var log = logrus.WithField("component", "topics")

// Setup registers the topic directives. The metadata provider supplies doc
// summaries and task classification for declared class names.
func Setup(app *host.App, provider meta.Provider) {
	app.AddDirective(TaskTopicDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runTopicDirective(ctx, provider, taskKind(provider), xref.FormatTaskID)
	})
	app.AddDirective(ConfigurableTopicDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runTopicDirective(ctx, provider, fixedKind(xref.TopicConfigurable), xref.FormatTaskID)
	})
	app.AddDirective(ConfigTopicDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runTopicDirective(ctx, provider, fixedKind(xref.TopicConfig), xref.FormatConfigID)
	})
	app.AddDirective(ConfigFieldsDirective, func(ctx *host.DirectiveContext) ([]docmodel.Node, error) {
		return runConfigFieldsDirective(ctx, provider)
	})
}

type kindFunc func(className string) xref.TopicKind

func fixedKind(kind xref.TopicKind) kindFunc {
	return func(string) xref.TopicKind { return kind }
}

// taskKind distinguishes plain tasks from pipeline tasks via the metadata
// provider's classification.
func taskKind(provider meta.Provider) kindFunc {
	return func(className string) xref.TopicKind {
		desc, err := provider.Describe(className)
		if err == nil && desc.Kind == meta.KindPipelineTask {
			return xref.TopicPipelineTask
		}
		return xref.TopicTask
	}
}

// runTopicDirective handles one topic declaration: it builds the summary,
// emits the anchor node, and registers the topic for later
// cross-referencing.
func runTopicDirective(ctx *host.DirectiveContext, provider meta.Provider, kind kindFunc, formatID func(string) string) ([]docmodel.Node, error) {
	if len(ctx.Args) == 0 || strings.TrimSpace(ctx.Args[0]) == "" {
		return nil, errors.Errorf(errors.KindConfiguration,
			"%s directive requires a class name as an argument", ctx.Name)
	}
	className := strings.TrimSpace(ctx.Args[0])
	log.Debugf("%s using class %s", ctx.Name, className)

	summary := summaryNodes(ctx, provider, className)

	targetID := formatID(className)
	target := &docmodel.Target{IDs: []string{targetID}}

	xref.Topics(ctx.Env).Register(&xref.TopicRecord{
		TargetID:           targetID,
		Docname:            ctx.Docname,
		Line:               ctx.Line,
		AnchorID:           targetID,
		Kind:               kind(className),
		FullyQualifiedName: className,
		Summary:            summary,
	})

	return []docmodel.Node{target}, nil
}

// summaryNodes uses the authored directive body when present, otherwise the
// summary sentence of the class's doc comment.
func summaryNodes(ctx *host.DirectiveContext, provider meta.Provider, className string) []docmodel.Node {
	if len(ctx.Content) > 0 {
		text := strings.TrimSpace(strings.Join(ctx.Content, "\n"))
		if text != "" {
			return []docmodel.Node{&docmodel.Paragraph{Nodes: []docmodel.Node{&docmodel.Text{Value: text}}}}
		}
	}

	doc := meta.Docstring(provider, className, func(format string, args ...any) {
		ctx.App.Warnf(ctx.Docname, ctx.Line, format, args...)
	})
	summary := strings.TrimSpace(meta.SummarySentence(doc))
	if summary == "" {
		summary = NoDescriptionFallback
	}
	return []docmodel.Node{&docmodel.Paragraph{Nodes: []docmodel.Node{&docmodel.Text{Value: summary}}}}
}

// runConfigFieldsDirective emits one anchored section per configuration
// field of the named config class and registers each field for
// config-field cross-referencing.
func runConfigFieldsDirective(ctx *host.DirectiveContext, provider meta.Provider) ([]docmodel.Node, error) {
	if len(ctx.Args) == 0 || strings.TrimSpace(ctx.Args[0]) == "" {
		return nil, errors.Errorf(errors.KindConfiguration,
			"%s directive requires a class name as an argument", ctx.Name)
	}
	className := strings.TrimSpace(ctx.Args[0])

	desc, err := provider.Describe(className)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration,
			"%s directive cannot describe %s", ctx.Name, className)
	}

	fields := xref.ConfigFields(ctx.Env)
	nodes := make([]docmodel.Node, 0, len(desc.Fields))
	for _, field := range desc.Fields {
		fieldID := xref.FormatConfigFieldID(className, field.Name)

		summary := strings.TrimSpace(meta.SummarySentence(field.Doc))
		if summary == "" {
			summary = NoDescriptionFallback
		}

		section := &docmodel.Section{
			IDs:   []string{fieldID},
			Names: []string{field.Name},
			Nodes: []docmodel.Node{
				&docmodel.Paragraph{Nodes: []docmodel.Node{&docmodel.Text{Value: summary}}},
			},
		}
		nodes = append(nodes, section)

		fields.Register(&xref.TopicRecord{
			TargetID:           fieldID,
			Docname:            ctx.Docname,
			Line:               ctx.Line,
			AnchorID:           fieldID,
			Kind:               xref.TopicConfig,
			FullyQualifiedName: className + "." + field.Name,
		})
	}

	return nodes, nil
}
