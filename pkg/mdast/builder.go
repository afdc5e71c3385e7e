package mdast

// NewNode creates a new node of the specified kind.
// The node has no parent, children, or span.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewRoot creates a new document root node.
func NewRoot() *Node {
	return NewNode(NodeDocument)
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// SetSpan sets the byte span for a node.
func SetSpan(n *Node, start, end int) {
	if n == nil {
		return
	}
	n.Span = &Span{Start: start, End: end}
}

// SetDocument sets the document reference for a node and all its descendants.
func SetDocument(node *Node, doc *Document) {
	if node == nil {
		return
	}

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(node, func(child *Node) error {
		child.Doc = doc
		return nil
	})
}
