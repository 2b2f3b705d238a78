package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/arborist-labs/subiso/triple"
)

// graphSpec is the on-disk shape of a single fixture graph: a list of
// [subject, predicate, object] token triples.
type graphSpec struct {
	Triples [][3]string `json:"triples"`
}

// ParseVertex converts a single fixture token into a triple.Vertex. A
// "?"-prefixed token is abstract; anything else is concrete.
func ParseVertex(token string) (triple.Vertex, error) {
	if token == "" {
		return triple.Vertex{}, ErrEmptyToken
	}
	if token[0] == '?' {
		return triple.NewAbstract(token[1:]), nil
	}
	return triple.NewConcrete(token), nil
}

func parseGraphSpec(spec graphSpec) (triple.Graph, error) {
	triples := make([]triple.Triple, 0, len(spec.Triples))
	for i, tok := range spec.Triples {
		s, err := ParseVertex(tok[0])
		if err != nil {
			return triple.Graph{}, fmt.Errorf("fixture: triple %d subject: %w", i, err)
		}
		p, err := ParseVertex(tok[1])
		if err != nil {
			return triple.Graph{}, fmt.Errorf("fixture: triple %d predicate: %w", i, err)
		}
		o, err := ParseVertex(tok[2])
		if err != nil {
			return triple.Graph{}, fmt.Errorf("fixture: triple %d object: %w", i, err)
		}
		triples = append(triples, triple.Triple{Subject: s, Predicate: p, Object: o})
	}
	return triple.Of(triples...), nil
}

// Load parses a single-graph fixture: a commented-JSON object with a
// "triples" field.
func Load(data []byte) (triple.Graph, error) {
	var spec graphSpec
	if err := json.Unmarshal(jsonc.ToJSON(data), &spec); err != nil {
		return triple.Graph{}, fmt.Errorf("fixture: decode: %w", err)
	}
	return parseGraphSpec(spec)
}

// LoadSet parses a multi-graph fixture: a commented-JSON object mapping
// names to single-graph specs, as used by the scenario-replay tests
// that exercise several named graphs against one index.
func LoadSet(data []byte) (map[string]triple.Graph, error) {
	var specs map[string]graphSpec
	if err := json.Unmarshal(jsonc.ToJSON(data), &specs); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	out := make(map[string]triple.Graph, len(specs))
	for name, spec := range specs {
		g, err := parseGraphSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("fixture: graph %q: %w", name, err)
		}
		out[name] = g
	}
	return out, nil
}
