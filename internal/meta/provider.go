// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package meta provides object metadata to the topic machinery: doc
// comments and task/config classification for fully-qualified names.
//
// Two providers exist: a pre-generated YAML metadata index, and a source
// scanner that extracts the same information from a Go source tree. Topic
// directives only see the Provider interface.
package meta

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind classifies a described object.
type Kind int

const (
	KindUnknown Kind = iota
	KindTask
	KindPipelineTask
	KindConfigurable
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindPipelineTask:
		return "pipeline_task"
	case KindConfigurable:
		return "configurable"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// KindFromString parses the string form used in metadata index files.
func KindFromString(s string) Kind {
	switch s {
	case "task":
		return KindTask
	case "pipeline_task":
		return KindPipelineTask
	case "configurable":
		return KindConfigurable
	case "config":
		return KindConfig
	default:
		return KindUnknown
	}
}

// Field is one configuration field of a described object.
type Field struct {
	Name string
	Doc  []string
}

// Description is the metadata known about one fully-qualified name.
type Description struct {
	FullyQualifiedName string
	Kind               Kind
	Doc                []string
	Fields             []Field
}

// Provider looks up object metadata by fully-qualified name.
type Provider interface {
	Describe(fullyQualifiedName string) (*Description, error)
}

// UndocumentedSentinel substitutes for a missing doc comment.
const UndocumentedSentinel = "Undocumented"

// WarnFunc receives missing-documentation warnings so callers with a build
// context can record them against a source location.
type WarnFunc func(format string, args ...any)

// Docstring returns the doc lines for fqn. A missing object or empty doc
// comment yields the Undocumented sentinel and a warning; it never fails.
// A nil warn falls back to plain logging.
func Docstring(p Provider, fqn string, warn WarnFunc) []string {
	if warn == nil {
		warn = logrus.WithField("component", "meta").Warnf
	}
	desc, err := p.Describe(fqn)
	if err != nil || desc == nil || len(desc.Doc) == 0 {
		warn("object %s doesn't have a doc comment", fqn)
		return []string{UndocumentedSentinel}
	}
	return desc.Doc
}

// SummarySentence extracts the first paragraph from doc lines: every line
// up to the first blank line, joined with single spaces.
func SummarySentence(doc []string) string {
	var summary []string
	for _, line := range doc {
		if line == "" {
			break
		}
		summary = append(summary, line)
	}
	return strings.Join(summary, " ")
}

// SplitDocText splits free-form doc text into trimmed lines, the shape the
// summary extraction works on.
func SplitDocText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	// Drop trailing blank lines.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
