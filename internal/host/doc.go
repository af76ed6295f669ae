// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package host is the thin surface of the rendering host that the stackdocs
// extensions consume: role/directive registration, the per-build environment
// that carries cross-reference registries between documents, the
// doctree-resolved event, and cross-document link resolution.
//
// The build is a two-phase batch: phase 1 executes directives and roles for
// every document in the set, phase 2 fires the doctree-resolved callbacks.
// Resolve never starts before every document has been parsed, because a
// reference in one document may target a topic declared in any other.
package host
