// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package docmodel

// Node is any element in a document tree.
type Node interface {
	node()
}

// Parent is a node that contains child nodes. ReplaceChildren must replace
// the full child slice, preserving order.
type Parent interface {
	Node
	Children() []Node
	ReplaceChildren([]Node)
}

// Document is the root of one document's tree. Name is the docname used for
// cross-document link resolution, e.g. "tasks/processCcdTask/index".
type Document struct {
	Name  string
	Nodes []Node
}

func (d *Document) node()                    {}
func (d *Document) Children() []Node         { return d.Nodes }
func (d *Document) ReplaceChildren(c []Node) { d.Nodes = c }

// Text is a plain text leaf.
type Text struct {
	Value string
}

func (t *Text) node() {}

// Literal is inline code / literal styling around child nodes.
type Literal struct {
	Nodes []Node
}

func (l *Literal) node()                    {}
func (l *Literal) Children() []Node         { return l.Nodes }
func (l *Literal) ReplaceChildren(c []Node) { l.Nodes = c }

// Reference is a resolved hyperlink to another document (and optionally an
// anchor fragment within it).
type Reference struct {
	RefDoc string
	RefURI string
	Nodes  []Node
}

func (r *Reference) node()                    {}
func (r *Reference) Children() []Node         { return r.Nodes }
func (r *Reference) ReplaceChildren(c []Node) { r.Nodes = c }

// Target is an invisible anchor carrying one or more IDs.
type Target struct {
	IDs []string
}

func (t *Target) node() {}

// Paragraph groups inline nodes.
type Paragraph struct {
	Nodes []Node
}

func (p *Paragraph) node()                    {}
func (p *Paragraph) Children() []Node         { return p.Nodes }
func (p *Paragraph) ReplaceChildren(c []Node) { p.Nodes = c }

// Section is a titled division with anchor IDs and names.
type Section struct {
	IDs   []string
	Names []string
	Nodes []Node
}

func (s *Section) node()                    {}
func (s *Section) Children() []Node         { return s.Nodes }
func (s *Section) ReplaceChildren(c []Node) { s.Nodes = c }

// BulletList is an unordered list of items.
type BulletList struct {
	Items []*ListItem
}

func (b *BulletList) node() {}

func (b *BulletList) Children() []Node {
	nodes := make([]Node, len(b.Items))
	for i, item := range b.Items {
		nodes[i] = item
	}
	return nodes
}

func (b *BulletList) ReplaceChildren(c []Node) {
	items := make([]*ListItem, 0, len(c))
	for _, n := range c {
		if item, ok := n.(*ListItem); ok {
			items = append(items, item)
		}
	}
	b.Items = items
}

// ListItem is one entry of a BulletList.
type ListItem struct {
	Nodes []Node
}

func (l *ListItem) node()                    {}
func (l *ListItem) Children() []Node         { return l.Nodes }
func (l *ListItem) ReplaceChildren(c []Node) { l.Nodes = c }

// PendingTaskXref is an unresolved reference to a task or configurable
// topic. It survives only until the resolve phase replaces it.
type PendingTaskXref struct {
	RawSource string
	Docname   string
	Line      int
}

func (p *PendingTaskXref) node() {}

// PendingConfigXref is an unresolved reference to a config topic.
type PendingConfigXref struct {
	RawSource string
	Docname   string
	Line      int
}

func (p *PendingConfigXref) node() {}

// PendingConfigFieldXref is an unresolved reference to a configuration
// field.
type PendingConfigFieldXref struct {
	RawSource string
	Docname   string
	Line      int
}

func (p *PendingConfigFieldXref) node() {}

// NewLiteralText builds a literal node wrapping a single text node.
func NewLiteralText(text string) *Literal {
	return &Literal{Nodes: []Node{&Text{Value: text}}}
}

// NewSection makes a section node with its ID and name derived from
// sectionID, optionally holding content.
func NewSection(sectionID string, contents ...Node) *Section {
	return &Section{
		IDs:   []string{MakeID(sectionID)},
		Names: []string{sectionID},
		Nodes: contents,
	}
}

// Walk visits every node under root in depth-first order, root included.
func Walk(root Node, visit func(Node)) {
	visit(root)
	if parent, ok := root.(Parent); ok {
		for _, child := range parent.Children() {
			Walk(child, visit)
		}
	}
}

// ReplaceNodes walks the tree under root and, for every node where replace
// returns a non-nil slice, splices the returned nodes into the parent's
// child list in place of the original node. Siblings keep their order;
// replacement nodes are not themselves revisited.
func ReplaceNodes(root Node, replace func(Node) []Node) {
	parent, ok := root.(Parent)
	if !ok {
		return
	}

	children := parent.Children()
	replaced := make([]Node, 0, len(children))
	changed := false
	for _, child := range children {
		if sub := replace(child); sub != nil {
			replaced = append(replaced, sub...)
			changed = true
			continue
		}
		ReplaceNodes(child, replace)
		replaced = append(replaced, child)
	}
	if changed {
		parent.ReplaceChildren(replaced)
	}
}
