package scene

import (
	"os"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// Decode parses a scene document. Three root shapes are accepted, matching
// what the editors in the wild produce:
//
//	{"name": …, "layers": [{"nodes": […]}, …]}
//	{"children": […]}            (single implicit layer)
//	[…]                          (bare node array, single implicit layer)
//
// Unknown fields are ignored.
func Decode(data []byte) (*Scene, error) {
	trimmed := firstByte(data)
	if trimmed == '[' {
		var nodes []*Node
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, errors.Wrap(err, "decoding scene node array")
		}
		return &Scene{Layers: []Layer{{Nodes: nodes}}}, nil
	}

	var doc struct {
		Name     string  `json:"name"`
		Layers   []Layer `json:"layers"`
		Children []*Node `json:"children"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding scene document")
	}

	sc := &Scene{Name: doc.Name, Layers: doc.Layers}
	if len(sc.Layers) == 0 && len(doc.Children) > 0 {
		sc.Layers = []Layer{{Nodes: doc.Children}}
	}
	return sc, nil
}

// DecodeFile reads and parses a scene document from disk.
func DecodeFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	return Decode(data)
}

// firstByte returns the first non-whitespace byte, or 0 for blank input.
func firstByte(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}
