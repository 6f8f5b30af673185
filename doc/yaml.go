package doc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a document tree from a YAML file. See Load.
func LoadFile(path string) ([]*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	nodes, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

// Load parses a document tree from YAML. The document is either a sequence
// of nodes or a mapping with a top-level "nodes" sequence. Decoding walks
// yaml.Node directly so that attribute insertion order survives; a plain
// map decode would lose it.
func Load(data []byte) ([]*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	top := resolve(root.Content[0])
	switch top.Kind {
	case yaml.SequenceNode:
		return decodeNodeSeq(top)
	case yaml.MappingNode:
		for i := 0; i+1 < len(top.Content); i += 2 {
			if top.Content[i].Value == "nodes" {
				seq := resolve(top.Content[i+1])
				if seq.Kind != yaml.SequenceNode {
					return nil, fmt.Errorf("line %d: nodes must be a sequence", seq.Line)
				}
				return decodeNodeSeq(seq)
			}
		}
		return nil, fmt.Errorf("line %d: no nodes sequence found", top.Line)
	default:
		return nil, fmt.Errorf("line %d: document must be a sequence or mapping", top.Line)
	}
}

func decodeNodeSeq(seq *yaml.Node) ([]*Node, error) {
	nodes := make([]*Node, 0, len(seq.Content))
	for _, item := range seq.Content {
		n, err := decodeNode(resolve(item))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(yn *yaml.Node) (*Node, error) {
	if yn.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: node must be a mapping", yn.Line)
	}

	n := &Node{}
	for i := 0; i+1 < len(yn.Content); i += 2 {
		key := yn.Content[i].Value
		val := resolve(yn.Content[i+1])

		switch key {
		case "kind", "type":
			n.Kind = val.Value
		case "content":
			c, err := decodeContent(val)
			if err != nil {
				return nil, err
			}
			n.Content = c
		case "attrs", "attributes":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: attrs must be a mapping", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				v, err := decodeScalar(resolve(val.Content[j+1]))
				if err != nil {
					return nil, err
				}
				n.Attrs = append(n.Attrs, Attr{Key: val.Content[j].Value, Value: v})
			}
		case "children":
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a sequence", val.Line)
			}
			children, err := decodeNodeSeq(val)
			if err != nil {
				return nil, err
			}
			n.Children = children
		default:
			return nil, fmt.Errorf("line %d: unknown node field %q", yn.Content[i].Line, key)
		}
	}

	if n.Kind == "" {
		return nil, fmt.Errorf("line %d: node missing kind", yn.Line)
	}
	return n, nil
}

func decodeContent(yn *yaml.Node) (any, error) {
	switch yn.Kind {
	case yaml.ScalarNode:
		return decodeScalar(yn)
	case yaml.MappingNode:
		return decodeNode(yn)
	case yaml.SequenceNode:
		items := make([]any, 0, len(yn.Content))
		for _, item := range yn.Content {
			c, err := decodeContent(resolve(item))
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported content", yn.Line)
	}
}

func decodeScalar(yn *yaml.Node) (any, error) {
	var v any
	if err := yn.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", yn.Line, err)
	}
	return v, nil
}

func resolve(yn *yaml.Node) *yaml.Node {
	if yn.Kind == yaml.AliasNode && yn.Alias != nil {
		return yn.Alias
	}
	return yn
}
