// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package docmodel defines the minimal document-tree node types consumed by
// the stackdocs extensions.
//
// The rendering host owns the full document model; this package only models
// the nodes the cross-referencing and navigation layers create or rewrite:
// inline text and literals, hyperlink references, anchor targets, sections,
// bullet lists, and the pending cross-reference placeholders that are
// substituted during the resolve phase.
package docmodel
