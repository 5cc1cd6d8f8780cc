package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-populator/pkg/core"
)

func TestNewEnvironmentTree(t *testing.T) {
	tree := NewEnvironmentTree()

	assert.Equal(t, []string{TextureCoordinateNode, ImageTextureNode, EmissionNode, OutputNode}, tree.Names())
	assert.Equal(t, []Link{
		{From: TextureCoordinateNode, To: ImageTextureNode},
		{From: ImageTextureNode, To: EmissionNode},
		{From: EmissionNode, To: OutputNode},
	}, tree.Links())

	node, ok := tree.Node(ImageTextureNode)
	require.True(t, ok)
	assert.Nil(t, node.Image)
}

func TestNode_SetImage(t *testing.T) {
	tree := NewEnvironmentTree()
	img := NewImageTexture(1, 1, []core.Vec3{core.NewVec3(1, 1, 1)})

	node, _ := tree.Node(ImageTextureNode)
	require.NoError(t, node.SetImage(img))
	assert.Same(t, img, node.Image)

	emission, _ := tree.Node(EmissionNode)
	assert.Error(t, emission.SetImage(img))
	assert.Nil(t, emission.Image)
}

func TestNodeTree_AddReplaces(t *testing.T) {
	tree := NewNodeTree()
	tree.Add(&Node{Name: "a", Type: NodeEmission})
	tree.Add(&Node{Name: "a", Type: NodeImageTexture})

	assert.Equal(t, []string{"a"}, tree.Names())
	node, ok := tree.Node("a")
	require.True(t, ok)
	assert.Equal(t, NodeImageTexture, node.Type)

	_, ok = tree.Node("missing")
	assert.False(t, ok)
}
