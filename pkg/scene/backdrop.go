package scene

import (
	"fmt"
	"log/slog"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/material"
)

// DomeAssetID is the catalog asset used as the backdrop
const DomeAssetID = "dome"

// Renderer identifies the active rendering backend
type Renderer interface {
	Name() string
}

// TexturedBackgroundRenderer is implemented by renderers whose materials are node graphs
// that can have an image bound to them.
type TexturedBackgroundRenderer interface {
	Renderer
	// NodeGraph returns the material graph the renderer links to obj
	NodeGraph(obj *Object) (*material.NodeTree, error)
	LoadImage(path string) (*material.ImageTexture, error)
}

// AttachBackdrop instantiates the static, shadow-catching dome and adds it to the scene.
// When hdriPath is set and r supports textured backgrounds, the image is bound to the
// dome's image texture node; otherwise binding is skipped. The dome is added to the scene
// and returned even if binding fails.
func AttachBackdrop(cat Catalog, s *Scene, r Renderer, hdriPath string) (*Object, error) {
	dome, err := cat.Create(DomeAssetID, DomeAssetID, 1)
	if err != nil {
		return nil, err
	}
	dome.Static = true
	dome.Background = true
	dome.ShadowCatcher = true
	s.AddObject(dome)

	if hdriPath == "" {
		return dome, nil
	}

	textured, ok := r.(TexturedBackgroundRenderer)
	if !ok {
		slog.Debug("renderer cannot texture the backdrop, skipping image", "renderer", rendererName(r), "hdri", hdriPath)
		return dome, nil
	}

	if err := bindBackdropImage(textured, dome, hdriPath); err != nil {
		return dome, err
	}
	return dome, nil
}

func bindBackdropImage(r TexturedBackgroundRenderer, dome *Object, hdriPath string) error {
	tree, err := r.NodeGraph(dome)
	if err != nil {
		return err
	}
	node, ok := tree.Node(material.ImageTextureNode)
	if !ok {
		return fmt.Errorf("%w: %s has no %q node for %s",
			core.ErrCapabilityUnavailable, r.Name(), material.ImageTextureNode, dome.Name)
	}

	img, err := r.LoadImage(hdriPath)
	if err != nil {
		return err
	}
	return node.SetImage(img)
}

func rendererName(r Renderer) string {
	if r == nil {
		return "none"
	}
	return r.Name()
}
