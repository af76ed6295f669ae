// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package xref

import "grimm.is/stackdocs/internal/docmodel"

// Kind prefixes for target identifiers. Task-like and configurable topics
// share a namespace; standalone config classes and config fields each get
// their own.
const (
	taskIDPrefix        = "task"
	configIDPrefix      = "config"
	configFieldIDPrefix = "configfield"
)

// FormatTaskID formats the target identifier for a task or configurable
// topic, e.g. "acme.pipelines.ingest.IngestTask".
func FormatTaskID(taskClassName string) string {
	return docmodel.MakeID(taskIDPrefix + "-" + taskClassName)
}

// FormatConfigID formats the target identifier for a standalone config
// topic.
func FormatConfigID(configClassName string) string {
	return docmodel.MakeID(configIDPrefix + "-" + configClassName)
}

// FormatConfigFieldID formats the target identifier for a configuration
// field. The class name and field name are separate path segments.
func FormatConfigFieldID(configClassName, fieldName string) string {
	return docmodel.MakeID(configFieldIDPrefix + "-" + configClassName + "-" + fieldName)
}
