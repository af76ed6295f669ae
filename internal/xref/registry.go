// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package xref

import (
	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/host"
)

// Well-known environment attribute keys for the build-scoped registries.
// Task, configurable, and standalone config topics share one registry;
// configuration fields have their own.
const (
	topicsEnvKey       = "stackdocs_task_topics"
	configFieldsEnvKey = "stackdocs_configfield_topics"
)

// TopicKind classifies a registered topic.
type TopicKind int

const (
	TopicTask TopicKind = iota
	TopicPipelineTask
	TopicConfigurable
	TopicConfig
)

func (k TopicKind) String() string {
	switch k {
	case TopicPipelineTask:
		return "PipelineTask"
	case TopicConfigurable:
		return "Configurable"
	case TopicConfig:
		return "Config"
	default:
		return "Task"
	}
}

// TopicRecord is the registration of one topic declaration. Records are
// created once during the parse phase and never mutated afterwards.
type TopicRecord struct {
	TargetID           string
	Docname            string
	Line               int
	AnchorID           string
	Kind               TopicKind
	FullyQualifiedName string
	Summary            []docmodel.Node
}

// Registry maps target identifiers to topic records for one build.
type Registry map[string]*TopicRecord

// Register inserts a record under its target identifier. Duplicate
// identifiers keep the last registration and log a warning naming both
// documents.
func (r Registry) Register(rec *TopicRecord) {
	if prev, ok := r[rec.TargetID]; ok {
		logrus.WithField("component", "xref").Warnf(
			"duplicate topic registration for %s: %s overrides %s",
			rec.TargetID, rec.Docname, prev.Docname)
	}
	r[rec.TargetID] = rec
}

// Lookup returns the record registered under targetID, if any.
func (r Registry) Lookup(targetID string) (*TopicRecord, bool) {
	rec, ok := r[targetID]
	return rec, ok
}

// Topics returns the build's shared topic registry (tasks, configurables,
// and standalone configs), creating it lazily on first use.
func Topics(env *host.Env) Registry {
	return envRegistry(env, topicsEnvKey)
}

// ConfigFields returns the build's configuration-field registry, creating
// it lazily on first use.
func ConfigFields(env *host.Env) Registry {
	return envRegistry(env, configFieldsEnvKey)
}

func envRegistry(env *host.Env, key string) Registry {
	if v, ok := env.Attr(key); ok {
		if reg, ok := v.(Registry); ok {
			return reg
		}
	}
	reg := make(Registry)
	env.SetAttr(key, reg)
	return reg
}
