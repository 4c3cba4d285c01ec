package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a reply must take. Declare one per reply
// kind as a package-level value; the definition is compiled once, on
// first use.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g.
	// "math-solution".
	Name string

	// Description tells the model what the reply represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	buildErr error
}

// check reports whether raw conforms to the schema. A nil schema
// accepts anything. Failures come back as *BadReplyError so the retry
// layer can give the model one more chance.
func (s *Schema) check(raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var reply any
	if err := json.Unmarshal(raw, &reply); err != nil {
		return &BadReplyError{Raw: raw, Err: fmt.Errorf("reply is not JSON: %w", err)}
	}

	s.once.Do(func() { s.compiled, s.buildErr = s.build() })
	if s.buildErr != nil {
		return &BadReplyError{Raw: raw, Err: fmt.Errorf("schema %q does not compile: %w", s.Name, s.buildErr)}
	}

	if err := s.compiled.Validate(reply); err != nil {
		return &BadReplyError{Raw: raw, Err: fmt.Errorf("reply violates schema %q: %w", s.Name, err)}
	}
	return nil
}

// build compiles Definition. The compiler wants a parsed JSON value,
// so the map takes a round trip through encoding/json first.
func (s *Schema) build() (*jsonschema.Schema, error) {
	doc, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("reparse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
