// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package host

import "github.com/google/uuid"

// Env is the per-build environment. Extensions stash build-scoped state
// (such as topic registries) under well-known attribute keys. An Env is
// created empty for each build invocation and discarded with it; nothing is
// persisted across builds.
type Env struct {
	// BuildID identifies one build invocation in logs.
	BuildID string

	attrs map[string]any
}

// NewEnv creates an empty build environment.
func NewEnv() *Env {
	return &Env{
		BuildID: uuid.NewString(),
		attrs:   make(map[string]any),
	}
}

// Attr returns the attribute stored under key, if any.
func (e *Env) Attr(key string) (any, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// SetAttr stores an attribute under key.
func (e *Env) SetAttr(key string, v any) {
	e.attrs[key] = v
}
