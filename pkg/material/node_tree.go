package material

import "fmt"

type NodeType string

const (
	NodeTextureCoordinate NodeType = "texture_coordinate"
	NodeImageTexture      NodeType = "image_texture"
	NodeEmission          NodeType = "emission"
	NodePrincipled        NodeType = "principled_bsdf"
	NodeOutput            NodeType = "output"
)

// Names of the nodes in the environment tree
const (
	TextureCoordinateNode = "Texture Coordinate"
	ImageTextureNode      = "Image Texture"
	EmissionNode          = "Emission"
	PrincipledNode        = "Principled BSDF"
	OutputNode            = "Material Output"
)

// Node is a named node in a renderer's material graph
type Node struct {
	Name  string
	Type  NodeType
	Image *ImageTexture // set on image texture nodes once bound
}

// SetImage binds img to an image texture node
func (n *Node) SetImage(img *ImageTexture) error {
	if n.Type != NodeImageTexture {
		return fmt.Errorf("node %q is a %s node, not an image texture", n.Name, n.Type)
	}
	n.Image = img
	return nil
}

// Link connects the output of one node to the input of another
type Link struct {
	From, To string
}

// NodeTree is a queryable graph of named nodes
type NodeTree struct {
	nodes map[string]*Node
	order []string
	links []Link
}

// NewNodeTree creates an empty tree
func NewNodeTree() *NodeTree {
	return &NodeTree{nodes: make(map[string]*Node)}
}

// NewEnvironmentTree creates the backdrop graph:
// texture coordinate -> image texture -> emission -> output
func NewEnvironmentTree() *NodeTree {
	t := NewNodeTree()
	t.Add(&Node{Name: TextureCoordinateNode, Type: NodeTextureCoordinate})
	t.Add(&Node{Name: ImageTextureNode, Type: NodeImageTexture})
	t.Add(&Node{Name: EmissionNode, Type: NodeEmission})
	t.Add(&Node{Name: OutputNode, Type: NodeOutput})
	t.Connect(TextureCoordinateNode, ImageTextureNode)
	t.Connect(ImageTextureNode, EmissionNode)
	t.Connect(EmissionNode, OutputNode)
	return t
}

// NewSurfaceTree creates the graph for an ordinary object: principled BSDF -> output
func NewSurfaceTree() *NodeTree {
	t := NewNodeTree()
	t.Add(&Node{Name: PrincipledNode, Type: NodePrincipled})
	t.Add(&Node{Name: OutputNode, Type: NodeOutput})
	t.Connect(PrincipledNode, OutputNode)
	return t
}

// Add inserts a node, replacing any node with the same name
func (t *NodeTree) Add(n *Node) {
	if _, exists := t.nodes[n.Name]; !exists {
		t.order = append(t.order, n.Name)
	}
	t.nodes[n.Name] = n
}

// Connect records a link between two nodes
func (t *NodeTree) Connect(from, to string) {
	t.links = append(t.links, Link{From: from, To: to})
}

// Node looks a node up by name
func (t *NodeTree) Node(name string) (*Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// Names returns node names in insertion order
func (t *NodeTree) Names() []string {
	return append([]string(nil), t.order...)
}

// Links returns a copy of the tree's links
func (t *NodeTree) Links() []Link {
	return append([]Link(nil), t.links...)
}
