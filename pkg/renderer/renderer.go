// Package renderer provides the backends scene builders query for optional capabilities.
// Neither backend draws pixels; they carry the material graphs and image resources a
// rendering pipeline consumes.
package renderer

import (
	"fmt"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/loaders"
	"github.com/df07/go-scene-populator/pkg/material"
	"github.com/df07/go-scene-populator/pkg/scene"
)

// Backend names
const (
	NodeGraphName = "nodegraph"
	HeadlessName  = "headless"
)

// ImageLoader loads an image from disk
type ImageLoader func(path string) (*loaders.ImageData, error)

// NodeGraph is a backend whose materials are node graphs. It links one graph to each
// object on first query, so repeated queries return the same graph.
type NodeGraph struct {
	trees  map[*scene.Object]*material.NodeTree
	loader ImageLoader
}

var _ scene.TexturedBackgroundRenderer = (*NodeGraph)(nil)

// NewNodeGraph creates a node graph backend that loads images from disk
func NewNodeGraph() *NodeGraph {
	return NewNodeGraphWithLoader(loaders.LoadImage)
}

// NewNodeGraphWithLoader creates a node graph backend with a custom image loader
func NewNodeGraphWithLoader(loader ImageLoader) *NodeGraph {
	return &NodeGraph{
		trees:  make(map[*scene.Object]*material.NodeTree),
		loader: loader,
	}
}

// Name implements scene.Renderer
func (r *NodeGraph) Name() string { return NodeGraphName }

// NodeGraph returns the graph linked to obj, creating it on first use.
// Background objects get the environment graph, everything else a principled surface.
func (r *NodeGraph) NodeGraph(obj *scene.Object) (*material.NodeTree, error) {
	if obj == nil {
		return nil, fmt.Errorf("no object to link a node graph to")
	}
	if tree, ok := r.trees[obj]; ok {
		return tree, nil
	}

	var tree *material.NodeTree
	if obj.Background {
		tree = material.NewEnvironmentTree()
	} else {
		tree = material.NewSurfaceTree()
	}
	r.trees[obj] = tree
	return tree, nil
}

// LoadImage loads path into an image texture
func (r *NodeGraph) LoadImage(path string) (*material.ImageTexture, error) {
	data, err := r.loader(path)
	if err != nil {
		return nil, err
	}
	tex := material.NewImageTexture(data.Width, data.Height, data.Pixels)
	tex.Source = data.Path
	if tex.Source == "" {
		tex.Source = path
	}
	return tex, nil
}

// backdropSamples is the grid size used to average a bound backdrop image
const backdropSamples = 16

// BackdropColor returns the average color of the image bound to obj's image texture node.
// It reports false when obj has no graph or nothing is bound.
func (r *NodeGraph) BackdropColor(obj *scene.Object) (core.Vec3, bool) {
	tree, ok := r.trees[obj]
	if !ok {
		return core.Vec3{}, false
	}
	node, ok := tree.Node(material.ImageTextureNode)
	if !ok || node.Image == nil {
		return core.Vec3{}, false
	}
	return node.Image.Average(backdropSamples), true
}

// Linked reports how many objects have a graph
func (r *NodeGraph) Linked() int { return len(r.trees) }

// Headless is a backend without node-graph materials; optional texturing is skipped against it
type Headless struct{}

// NewHeadless creates a headless backend
func NewHeadless() *Headless { return &Headless{} }

// Name implements scene.Renderer
func (Headless) Name() string { return HeadlessName }

// New returns the backend registered under name
func New(name string) (scene.Renderer, error) {
	switch name {
	case NodeGraphName:
		return NewNodeGraph(), nil
	case HeadlessName:
		return NewHeadless(), nil
	default:
		return nil, fmt.Errorf("%w: unknown renderer %q", core.ErrInvalidConfiguration, name)
	}
}
