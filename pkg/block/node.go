package block

// NodeConnection is the in-memory [Connection] used by [Node].
type NodeConnection struct {
	typ    ConnectionType
	check  []string
	owner  *Node
	target *NodeConnection

	offsetX, offsetY float64
}

func (c *NodeConnection) Type() ConnectionType { return c.typ }
func (c *NodeConnection) Check() []string      { return c.check }

// Owner returns the block the connection belongs to.
func (c *NodeConnection) Owner() *Node { return c.owner }

func (c *NodeConnection) Target() Block {
	if c.target == nil {
		return nil
	}
	return c.target.owner
}

// TargetNode is Target without the interface conversion.
func (c *NodeConnection) TargetNode() *Node {
	if c.target == nil {
		return nil
	}
	return c.target.owner
}

func (c *NodeConnection) SetOffsetInBlock(x, y float64) {
	c.offsetX, c.offsetY = x, y
}

// Offset returns the position recorded by the last draw pass.
func (c *NodeConnection) Offset() (x, y float64) { return c.offsetX, c.offsetY }

func (c *NodeConnection) connect(other *NodeConnection) {
	if c.target != nil {
		c.target.target = nil
	}
	if other.target != nil {
		other.target.target = nil
	}
	c.target, other.target = other, c
}

func (c *NodeConnection) disconnect() {
	if c.target != nil {
		c.target.target = nil
		c.target = nil
	}
}

// NodeInput is the in-memory [Input] used by [Node].
type NodeInput struct {
	name    string
	typ     InputType
	align   Align
	visible bool
	fields  []Field
	conn    *NodeConnection
}

func (in *NodeInput) Name() string    { return in.name }
func (in *NodeInput) Type() InputType { return in.typ }
func (in *NodeInput) Align() Align    { return in.align }
func (in *NodeInput) Visible() bool   { return in.visible }
func (in *NodeInput) Fields() []Field { return in.fields }

func (in *NodeInput) Connection() Connection {
	if in.conn == nil {
		return nil
	}
	return in.conn
}

// SetAlign changes the horizontal alignment.
func (in *NodeInput) SetAlign(a Align) *NodeInput {
	in.align = a
	return in
}

// SetVisible hides or shows the input.
func (in *NodeInput) SetVisible(v bool) *NodeInput {
	in.visible = v
	return in
}

// AppendField adds a field to the end of the input.
func (in *NodeInput) AppendField(f Field) *NodeInput {
	in.fields = append(in.fields, f)
	return in
}

// SetCheck sets the accepted type names of the input connection.
func (in *NodeInput) SetCheck(check ...string) *NodeInput {
	if in.conn != nil {
		in.conn.check = check
	}
	return in
}

// Attach connects child into this input. Value inputs use the child's
// output connection, statement inputs its previous connection.
func (in *NodeInput) Attach(child *Node) bool {
	if in.conn == nil || child == nil {
		return false
	}
	switch in.typ {
	case ValueInput:
		if child.output == nil {
			return false
		}
		in.conn.connect(child.output)
	case StatementInput:
		if child.previous == nil {
			return false
		}
		in.conn.connect(child.previous)
	default:
		return false
	}
	return true
}

// Child returns the attached block, or nil.
func (in *NodeInput) Child() *Node {
	if in.conn == nil {
		return nil
	}
	return in.conn.TargetNode()
}

// Node is the in-memory [Block] implementation.
type Node struct {
	id      string
	typ     string
	style   string
	hat     string
	inputs  []*NodeInput
	icons   []Icon
	summary Field

	inline      bool
	collapsed   bool
	shadow      bool
	marker      bool
	rtl         bool
	outputShape OutputShape

	previous *NodeConnection
	next     *NodeConnection
	output   *NodeConnection

	size Size

	// X and Y position a top-level block on the workspace.
	X, Y float64
	// Selected draws the selection overlay.
	Selected bool
}

// NodeOption configures a [Node] at construction.
type NodeOption func(*Node)

// WithStyle sets the theme block style name.
func WithStyle(style string) NodeOption { return func(n *Node) { n.style = style } }

// WithPrevious gives the block a previous connection.
func WithPrevious(check ...string) NodeOption {
	return func(n *Node) { n.previous = &NodeConnection{typ: PreviousStatement, check: check, owner: n} }
}

// WithNext gives the block a next connection.
func WithNext(check ...string) NodeOption {
	return func(n *Node) { n.next = &NodeConnection{typ: NextStatement, check: check, owner: n} }
}

// WithOutput gives the block an output connection.
func WithOutput(check ...string) NodeOption {
	return func(n *Node) { n.output = &NodeConnection{typ: OutputValue, check: check, owner: n} }
}

// WithInline lays value inputs out inline.
func WithInline() NodeOption { return func(n *Node) { n.inline = true } }

// WithCollapsed collapses the block, showing summary instead of inputs.
func WithCollapsed(summary Field) NodeOption {
	return func(n *Node) { n.collapsed, n.summary = true, summary }
}

// WithShadow marks the block as a shadow block.
func WithShadow() NodeOption { return func(n *Node) { n.shadow = true } }

// WithInsertionMarker marks the block as an insertion marker.
func WithInsertionMarker() NodeOption { return func(n *Node) { n.marker = true } }

// WithHat draws a start hat of the given kind ("cap").
func WithHat(hat string) NodeOption { return func(n *Node) { n.hat = hat } }

// WithOutputShape overrides the dynamic output shape.
func WithOutputShape(s OutputShape) NodeOption { return func(n *Node) { n.outputShape = s } }

// WithIcon adds an icon before the first input.
func WithIcon(i Icon) NodeOption { return func(n *Node) { n.icons = append(n.icons, i) } }

// NewNode creates a block with the given id and type name.
func NewNode(id, typ string, opts ...NodeOption) *Node {
	n := &Node{id: id, typ: typ}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddInput appends an input. Value and statement inputs get a connection.
func (n *Node) AddInput(name string, typ InputType, fields ...Field) *NodeInput {
	in := &NodeInput{name: name, typ: typ, visible: true, fields: fields}
	switch typ {
	case ValueInput:
		in.conn = &NodeConnection{typ: InputValue, owner: n}
	case StatementInput:
		in.conn = &NodeConnection{typ: NextStatement, owner: n}
	}
	n.inputs = append(n.inputs, in)
	return in
}

// RemoveInput deletes the named input, detaching any child.
func (n *Node) RemoveInput(name string) bool {
	for i, in := range n.inputs {
		if in.name == name {
			if in.conn != nil {
				in.conn.disconnect()
			}
			n.inputs = append(n.inputs[:i], n.inputs[i+1:]...)
			return true
		}
	}
	return false
}

// Input returns the named input, or nil.
func (n *Node) Input(name string) *NodeInput {
	for _, in := range n.inputs {
		if in.name == name {
			return in
		}
	}
	return nil
}

// NodeInputs returns the inputs with their concrete type.
func (n *Node) NodeInputs() []*NodeInput { return n.inputs }

// AttachNext chains child below n.
func (n *Node) AttachNext(child *Node) bool {
	if n.next == nil || child == nil || child.previous == nil {
		return false
	}
	n.next.connect(child.previous)
	return true
}

// SetRTL sets the rendering direction.
func (n *Node) SetRTL(rtl bool) { n.rtl = rtl }

// SetCollapsed toggles collapsing.
func (n *Node) SetCollapsed(c bool) { n.collapsed = c }

func (n *Node) ID() string               { return n.id }
func (n *Node) Type() string             { return n.typ }
func (n *Node) Style() string            { return n.style }
func (n *Node) Icons() []Icon            { return n.icons }
func (n *Node) InputsInline() bool       { return n.inline }
func (n *Node) Collapsed() bool          { return n.collapsed }
func (n *Node) CollapsedSummary() Field  { return n.summary }
func (n *Node) Shadow() bool             { return n.shadow }
func (n *Node) InsertionMarker() bool    { return n.marker }
func (n *Node) RTL() bool                { return n.rtl }
func (n *Node) Hat() string              { return n.hat }
func (n *Node) OutputShape() OutputShape { return n.outputShape }
func (n *Node) RenderedSize() Size       { return n.size }
func (n *Node) SetRenderedSize(s Size)   { n.size = s }

func (n *Node) Inputs() []Input {
	out := make([]Input, len(n.inputs))
	for i, in := range n.inputs {
		out[i] = in
	}
	return out
}

func (n *Node) Previous() Connection { return connOrNil(n.previous) }
func (n *Node) Next() Connection     { return connOrNil(n.next) }
func (n *Node) Output() Connection   { return connOrNil(n.output) }

// PreviousConn, NextConn and OutputConn return the concrete connections.
func (n *Node) PreviousConn() *NodeConnection { return n.previous }
func (n *Node) NextConn() *NodeConnection     { return n.next }
func (n *Node) OutputConn() *NodeConnection   { return n.output }

func (n *Node) PreviousBlock() Block {
	if n.previous == nil || n.previous.target == nil {
		return nil
	}
	if n.previous.target.typ != NextStatement || n.previous.target.owner.next != n.previous.target {
		return nil
	}
	return n.previous.target.owner
}

func (n *Node) NextBlock() Block {
	if next := n.NextNode(); next != nil {
		return next
	}
	return nil
}

// NextNode is NextBlock without the interface conversion.
func (n *Node) NextNode() *Node {
	if n.next == nil {
		return nil
	}
	return n.next.TargetNode()
}

// Children returns every block attached to n's inputs, in input order.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, in := range n.inputs {
		if c := in.Child(); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n, its input children and its next chain depth first.
// Returning false from fn stops the walk below that block.
func (n *Node) Walk(fn func(*Node) bool) {
	for cur := n; cur != nil; cur = cur.NextNode() {
		if !fn(cur) {
			continue
		}
		for _, c := range cur.Children() {
			c.Walk(fn)
		}
	}
}

func connOrNil(c *NodeConnection) Connection {
	if c == nil {
		return nil
	}
	return c
}
