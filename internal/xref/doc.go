// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package xref implements deferred cross-referencing for task and
// configuration topics.
//
// Reference roles (task, config, config-field) emit pending placeholder
// nodes at parse time. After the entire document set has been parsed, the
// doctree-resolved callbacks rewrite each placeholder into either a
// hyperlink to the topic's anchor or, when the target is unknown, a plain
// literal label plus a warning. Topic declarations (package topics) fill the
// build-scoped registries this package reads; resolution never writes them.
package xref
