// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package host

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"grimm.is/stackdocs/internal/docmodel"
	"grimm.is/stackdocs/internal/errors"
)

// RoleContext carries the invocation of an inline reference role.
type RoleContext struct {
	App     *App
	Env     *Env
	Docname string
	Line    int
	RawText string
}

// DirectiveContext carries the invocation of a block directive.
type DirectiveContext struct {
	App     *App
	Env     *Env
	Docname string
	Line    int
	Name    string
	Args    []string
	Content []string
	Options map[string]string
}

// RoleFunc processes an inline role and returns the nodes it contributes.
type RoleFunc func(*RoleContext) []docmodel.Node

// DirectiveFunc processes a directive and returns the nodes it contributes.
type DirectiveFunc func(*DirectiveContext) ([]docmodel.Node, error)

// ResolvedFunc is a doctree-resolved event callback, fired once per document
// after the whole document set has been parsed.
type ResolvedFunc func(*App, *docmodel.Document)

// Warning is a recorded non-fatal diagnostic with its source location.
type Warning struct {
	Docname string
	Line    int
	Message string
}

// App is the extension-facing handle on one build of a document set.
type App struct {
	Env *Env

	roles      map[string]RoleFunc
	directives map[string]DirectiveFunc
	nodeKinds  map[string]bool
	resolved   []ResolvedFunc

	docs     []*docmodel.Document
	docIndex map[string]*docmodel.Document

	warnings []Warning
	log      *logrus.Entry

	// per-document pseudo-line counters so diagnostics can point at the
	// declaration or reference that produced them
	lines map[string]int
}

// NewApp creates an app with a fresh build environment.
func NewApp() *App {
	return &App{
		Env:        NewEnv(),
		roles:      make(map[string]RoleFunc),
		directives: make(map[string]DirectiveFunc),
		nodeKinds:  make(map[string]bool),
		docIndex:   make(map[string]*docmodel.Document),
		lines:      make(map[string]int),
		log:        logrus.WithField("component", "host"),
	}
}

// AddRole registers an inline reference role by name.
func (a *App) AddRole(name string, fn RoleFunc) {
	a.roles[name] = fn
}

// AddDirective registers a directive by name.
func (a *App) AddDirective(name string, fn DirectiveFunc) {
	a.directives[name] = fn
}

// AddNode registers a node kind contributed by an extension.
func (a *App) AddNode(kind string) {
	a.nodeKinds[kind] = true
}

// ConnectDoctreeResolved registers a callback for the doctree-resolved event.
func (a *App) ConnectDoctreeResolved(fn ResolvedFunc) {
	a.resolved = append(a.resolved, fn)
}

// AddDocument creates an empty document in the build's document set.
func (a *App) AddDocument(name string) *docmodel.Document {
	doc := &docmodel.Document{Name: name}
	a.docs = append(a.docs, doc)
	a.docIndex[name] = doc
	return doc
}

// Document returns the named document, if present.
func (a *App) Document(name string) (*docmodel.Document, bool) {
	doc, ok := a.docIndex[name]
	return doc, ok
}

// DocNames lists every document name in the set, sorted.
func (a *App) DocNames() []string {
	names := make([]string, 0, len(a.docs))
	for _, doc := range a.docs {
		names = append(names, doc.Name)
	}
	sort.Strings(names)
	return names
}

// RunRole executes a registered role against doc and returns the inline
// nodes it produced. The caller places them into the tree.
func (a *App) RunRole(doc *docmodel.Document, name, rawText string) ([]docmodel.Node, error) {
	fn, ok := a.roles[name]
	if !ok {
		return nil, errors.Errorf(errors.KindNotFound, "unknown role %q", name)
	}
	a.lines[doc.Name]++
	ctx := &RoleContext{
		App:     a,
		Env:     a.Env,
		Docname: doc.Name,
		Line:    a.lines[doc.Name],
		RawText: rawText,
	}
	return fn(ctx), nil
}

// RunDirective executes a registered directive against doc and appends the
// nodes it produced to the document. A directive error terminates only that
// directive's contribution.
func (a *App) RunDirective(doc *docmodel.Document, name string, args, content []string, options map[string]string) error {
	fn, ok := a.directives[name]
	if !ok {
		return errors.Errorf(errors.KindNotFound, "unknown directive %q", name)
	}
	a.lines[doc.Name]++
	ctx := &DirectiveContext{
		App:     a,
		Env:     a.Env,
		Docname: doc.Name,
		Line:    a.lines[doc.Name],
		Name:    name,
		Args:    args,
		Content: content,
		Options: options,
	}
	nodes, err := fn(ctx)
	if err != nil {
		return err
	}
	doc.Nodes = append(doc.Nodes, nodes...)
	return nil
}

// Resolve fires the doctree-resolved callbacks for every document. This is
// the whole-build barrier: call it only after every document's directives
// and roles have run.
func (a *App) Resolve() {
	for _, doc := range a.docs {
		for _, fn := range a.resolved {
			fn(a, doc)
		}
	}
}

// RelativeURI computes the relative link from one document to another's
// rendered page.
func (a *App) RelativeURI(from, to string) string {
	rel, err := filepath.Rel(filepath.Dir(from), to)
	if err != nil {
		// Fall back to a root-relative path.
		rel = to
	}
	return filepath.ToSlash(rel) + ".html"
}

// Warnf logs and records a non-fatal warning attached to a source location.
func (a *App) Warnf(docname string, line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.warnings = append(a.warnings, Warning{Docname: docname, Line: line, Message: msg})
	a.log.WithFields(logrus.Fields{
		"build":    a.Env.BuildID,
		"document": docname,
		"line":     line,
	}).Warn(msg)
}

// Warnings returns every warning recorded so far, in order.
func (a *App) Warnings() []Warning {
	return a.warnings
}
