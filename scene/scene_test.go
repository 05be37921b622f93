package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func layered() *Scene {
	hidden := false

	return &Scene{Layers: []Layer{
		{Name: "chrome", Nodes: []*Node{
			{Type: "panel", Name: "root", Children: []*Node{
				{Type: "label"},
				{Type: "button", Name: "ok"},
			}},
		}},
		{Name: "draft", Visible: &hidden, Nodes: []*Node{
			{Type: "gauge"},
		}},
		{Name: "overlay", Nodes: []*Node{
			{Type: "border"},
		}},
	}}
}

func TestVisibleNodes(t *testing.T) {
	nodes := layered().VisibleNodes()

	// Check hidden layers drop out and order follows the document.
	assert.Len(t, nodes, 2)
	assert.Equal(t, "panel", nodes[0].Type)
	assert.Equal(t, "border", nodes[1].Type)
}

func TestWalkDepthFirst(t *testing.T) {
	var visited []string

	layered().Walk(func(n *Node) bool {
		visited = append(visited, n.Type)
		return true
	})

	assert.Equal(t, []string{"panel", "label", "button", "border"}, visited)
}

func TestWalkStopsEarly(t *testing.T) {
	var visited []string

	layered().Walk(func(n *Node) bool {
		visited = append(visited, n.Type)
		return n.Type != "label"
	})

	assert.Equal(t, []string{"panel", "label"}, visited)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, layered().Count())
}

func TestWalkTolerantOfNilChildren(t *testing.T) {
	s := &Scene{Layers: []Layer{{Nodes: []*Node{
		{Type: "panel", Children: []*Node{nil, {Type: "button"}}},
	}}}}

	assert.Equal(t, 2, s.Count())
}

func TestPropertyAbsent(t *testing.T) {
	n := &Node{Type: "button"}

	_, ok := n.Property("text")
	assert.False(t, ok)
}
