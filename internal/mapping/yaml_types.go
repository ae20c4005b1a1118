package mapping

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"
)

// --- Number YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Number.
// Accepts any integer scalar in [0, MaxUint64].
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer, got %v", node.Line, node.Kind)
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case int:
		u, err := safecast.Conv[uint64](v)
		if err != nil {
			return fmt.Errorf("line %d: %w: %d is negative", node.Line, ErrMalformedInput, v)
		}

		*n = Number(u)
	case int64:
		u, err := safecast.Conv[uint64](v)
		if err != nil {
			return fmt.Errorf("line %d: %w: %d is negative", node.Line, ErrMalformedInput, v)
		}

		*n = Number(u)
	case uint64:
		*n = Number(v)
	default:
		return fmt.Errorf("line %d: %w: %q is not an unsigned integer", node.Line, ErrMalformedInput, node.Value)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Number.
func (n Number) MarshalYAML() (any, error) {
	return uint64(n), nil
}

// --- RuleDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for RuleDef.
// Accepts either a [destination, source, length] triplet or a mapping.
func (r *RuleDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var triplet []Number

		err := node.Decode(&triplet)
		if err != nil {
			return err
		}

		if len(triplet) != 3 {
			return fmt.Errorf("line %d: %w: rule triplet needs 3 numbers, got %d",
				node.Line, ErrMalformedInput, len(triplet))
		}

		*r = RuleDef{Destination: triplet[0], Source: triplet[1], Length: triplet[2]}

		return nil

	case yaml.MappingNode:
		// plain avoids recursing into this method.
		type plain RuleDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*r = RuleDef(p)

		return nil

	default:
		return errors.New("rule must be a [destination, source, length] triplet or a mapping")
	}
}

// MarshalYAML implements custom YAML marshaling for RuleDef.
// Outputs the flow-style triplet form.
func (r RuleDef) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []Number{r.Destination, r.Source, r.Length} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(uint64(v), 10),
		})
	}

	return node, nil
}
