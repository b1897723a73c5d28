// Package dom provides the Document Object Model tree structure produced
// by the html tokenizer/tree-builder and consumed by style and layout.
//
// A tree is a set of Nodes connected by exclusive parent-owns-child edges:
// every node has at most one Parent, and appears in exactly one Children
// slice. Node carries a NodeType discriminator (Element/Text/Comment/
// Document) rather than being split into separate Go types, matching the
// shape golang.org/x/net/html and the rest of this pack use for DOM trees:
// a homogeneous []*Node keeps tree-walking code (style matching, layout,
// URL resolution) uniform across node kinds.
package dom

import "fmt"

// NodeType represents the kind of a DOM node.
type NodeType int

const (
	// DocumentNode is the root of a tree; there is exactly one per tree.
	DocumentNode NodeType = iota
	// ElementNode represents an HTML element (e.g., <div>, <p>).
	ElementNode
	// TextNode represents text content within an element.
	TextNode
	// CommentNode represents a <!-- comment -->.
	CommentNode
)

// DirtyFlag marks which computed aspects of a node are stale after a
// mutation. Flags propagate upward to ancestors on Mark and are cleared
// only on the node they're cleared for - clearing a child's flags never
// clears its parent's.
type DirtyFlag uint8

const (
	DirtyStyle DirtyFlag = 1 << iota
	DirtyLayout
)

// Attr is one name/value pair, kept in an ordered slice (not a map) so
// attribute order is preserved across a GetOuterHTML-style render and so
// duplicate-name resolution can implement first-wins deterministically.
type Attr struct {
	Name  string
	Value string
}

// Node is a single element, text run, comment, or the document root.
type Node struct {
	Type       NodeType
	Data       string // tag name for elements, text/comment content otherwise
	Attributes []Attr
	Children   []*Node
	Parent     *Node // non-owning back-reference; nil for the document root

	dirty DirtyFlag

	// owner is set on every node reachable from a document's tree so
	// id-index registration can find the right index on SetAttribute.
	owner *idIndex
}

// NewElement creates a detached element node with the given tag name.
func NewElement(tagName string) *Node {
	return &Node{Type: ElementNode, Data: tagName}
}

// NewText creates a detached text node with the given content.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// NewComment creates a detached comment node with the given content.
func NewComment(text string) *Node {
	return &Node{Type: CommentNode, Data: text}
}

// ViolationKind classifies a ContractViolation.
type ViolationKind int

const (
	// NotAChild is raised by RemoveChild when the argument is not
	// actually a child of the receiver.
	NotAChild ViolationKind = iota
	// BadReference is raised by InsertBefore when the reference node is
	// not a child of the receiver.
	BadReference
)

func (k ViolationKind) String() string {
	switch k {
	case NotAChild:
		return "NotAChild"
	case BadReference:
		return "BadReference"
	default:
		return "Unknown"
	}
}

// ContractViolation reports a caller misuse of the tree-mutation API, as
// opposed to a tolerated parse error. These always indicate a bug in the
// caller, not malformed input.
type ContractViolation struct {
	Kind ViolationKind
	Msg  string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("dom: %s: %s", e.Kind, e.Msg)
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	child.detach()
	child.Parent = n
	child.setOwner(n.owner)
	n.Children = append(n.Children, child)
	n.Mark(DirtyStyle | DirtyLayout)
}

// InsertBefore inserts newChild immediately before reference in n's
// children. If reference is nil, newChild is appended at the end. Returns
// a *ContractViolation{BadReference} if reference is non-nil and not
// actually a child of n.
func (n *Node) InsertBefore(newChild, reference *Node) error {
	if reference == nil {
		n.AppendChild(newChild)
		return nil
	}
	idx := -1
	for i, c := range n.Children {
		if c == reference {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &ContractViolation{Kind: BadReference, Msg: "reference node is not a child of this node"}
	}
	newChild.detach()
	newChild.Parent = n
	newChild.setOwner(n.owner)
	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = newChild
	n.Mark(DirtyStyle | DirtyLayout)
	return nil
}

// RemoveChild detaches child from n. Returns a *ContractViolation{NotAChild}
// if child is not actually a child of n.
func (n *Node) RemoveChild(child *Node) error {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.setOwner(nil)
			n.Mark(DirtyLayout) // only the parent's layout is stale; style of siblings is not
			return nil
		}
	}
	return &ContractViolation{Kind: NotAChild, Msg: "node is not a child of this node"}
}

// detach removes n from its current parent, if any, without touching n's
// own Parent/owner fields (the caller sets those immediately after).
func (n *Node) detach() {
	if n.Parent == nil {
		return
	}
	parent := n.Parent
	for i, c := range parent.Children {
		if c == n {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
}

func (n *Node) setOwner(owner *idIndex) {
	if n.owner != nil && n.owner != owner && n.Type == ElementNode {
		n.owner.unregister(n.GetAttribute("id"), n)
	}
	n.owner = owner
	if n.Type == ElementNode && owner != nil {
		if id := n.GetAttribute("id"); id != "" {
			owner.register(id, n)
		}
	}
	for _, c := range n.Children {
		c.setOwner(owner)
	}
}

// Mark sets flags on n and propagates them up through every ancestor; a
// style or layout invalidation below a node always means the node itself
// (and everything above it) may need recomputation.
func (n *Node) Mark(flags DirtyFlag) {
	for cur := n; cur != nil; cur = cur.Parent {
		cur.dirty |= flags
	}
}

// ClearDirty clears flags on n only - it does not propagate to children or
// ancestors, matching the asymmetry in Mark.
func (n *Node) ClearDirty(flags DirtyFlag) {
	n.dirty &^= flags
}

// Dirty reports whether any of flags is set on n.
func (n *Node) Dirty(flags DirtyFlag) bool {
	return n.dirty&flags != 0
}

// GetAttribute returns the value of the first attribute named name, or ""
// if absent.
func (n *Node) GetAttribute(name string) string {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether n carries an attribute named name.
func (n *Node) HasAttribute(name string) bool {
	for _, a := range n.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets name to value, overwriting an existing attribute of
// the same name in place (preserving its position) or appending a new one.
// Setting "id" on a node already attached to a Document updates that
// Document's id index.
func (n *Node) SetAttribute(name, value string) {
	oldID := ""
	if name == "id" {
		oldID = n.GetAttribute("id")
	}
	for i, a := range n.Attributes {
		if a.Name == name {
			n.Attributes[i].Value = value
			n.afterIDChange(name, oldID, value)
			return
		}
	}
	n.Attributes = append(n.Attributes, Attr{Name: name, Value: value})
	n.afterIDChange(name, oldID, value)
}

func (n *Node) afterIDChange(name, oldID, newID string) {
	if name != "id" || n.owner == nil {
		return
	}
	if oldID != "" {
		n.owner.unregister(oldID, n)
	}
	if newID != "" {
		n.owner.register(newID, n)
	}
}

// RemoveAttribute deletes the attribute named name, if present.
func (n *Node) RemoveAttribute(name string) {
	for i, a := range n.Attributes {
		if a.Name == name {
			if name == "id" && n.owner != nil && a.Value != "" {
				n.owner.unregister(a.Value, n)
			}
			n.Attributes = append(n.Attributes[:i], n.Attributes[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// Classes returns the element's class names in source order, possibly with
// duplicates, matching how browsers expose classList iteration order.
func (n *Node) Classes() []string {
	return ClassList(n.GetAttribute("class")).Entries()
}

// ClassList is the raw, space-separated value of a class attribute.
type ClassList string

// Entries splits the class attribute on ASCII whitespace.
func (c ClassList) Entries() []string {
	s := string(c)
	var result []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\f' || s[i] == '\r' {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	return result
}

// Contains reports whether name appears in the class list.
func (c ClassList) Contains(name string) bool {
	for _, e := range c.Entries() {
		if e == name {
			return true
		}
	}
	return false
}

// Add returns the class list with name appended if not already present.
func (c ClassList) Add(name string) ClassList {
	if c.Contains(name) {
		return c
	}
	if c == "" {
		return ClassList(name)
	}
	return c + " " + ClassList(name)
}

// Remove returns the class list with every occurrence of name removed.
func (c ClassList) Remove(name string) ClassList {
	entries := c.Entries()
	var kept []string
	for _, e := range entries {
		if e != name {
			kept = append(kept, e)
		}
	}
	result := ClassList("")
	for i, e := range kept {
		if i > 0 {
			result += " "
		}
		result += ClassList(e)
	}
	return result
}

// Toggle adds name if absent or removes it if present, returning the new
// list and whether name ended up present.
func (c ClassList) Toggle(name string) (ClassList, bool) {
	if c.Contains(name) {
		return c.Remove(name), false
	}
	return c.Add(name), true
}
