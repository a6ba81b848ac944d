package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies which detection heuristic produced a diagnostic.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output, and the marshalers below emit the name so structured reports are
// self-describing.
type Kind int

const (
	// KindAdjacent indicates two identical adjacent tokens on the same line,
	// e.g. "This way it it possible".
	KindAdjacent Kind = iota

	// KindCrossLine indicates that the last token of one line equals the
	// first token of the next line, e.g. a line ending in "periodic"
	// followed by a line starting with "periodic".
	KindCrossLine
)

// String returns a human-readable representation of the diagnostic kind.
func (k Kind) String() string {
	switch k {
	case KindAdjacent:
		return "adjacent"
	case KindCrossLine:
		return "cross-line"
	default:
		return "unknown"
	}
}

// parseKind maps a kind name back to its constant.
func parseKind(name string) (Kind, error) {
	switch name {
	case "adjacent":
		return KindAdjacent, nil
	case "cross-line":
		return KindCrossLine, nil
	default:
		return 0, fmt.Errorf("unknown diagnostic kind %q", name)
	}
}

// MarshalJSON encodes the kind by name ("adjacent", "cross-line").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := parseKind(name)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// MarshalYAML encodes the kind by name, matching the JSON form.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, err := parseKind(name)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}
