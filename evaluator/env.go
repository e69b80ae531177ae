package evaluator

import (
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

type Binding struct {
	Name  string
	Value Value
}

// Env holds the bindings of one session in declaration order.
// Names may repeat; lookups resolve to the earliest binding.
type Env struct {
	bindings []Binding
}

func NewEnv() *Env {
	return new(Env)
}

// Declare appends a binding without touching existing ones.
func (e *Env) Declare(name string, value Value) {
	e.bindings = append(e.bindings, Binding{
		Name:  name,
		Value: value,
	})
}

// Assign removes every binding of name and appends the new one.
func (e *Env) Assign(name string, value Value) {
	e.bindings = slices.DeleteFunc(e.bindings, func(b Binding) bool {
		return b.Name == name
	})
	e.Declare(name, value)
}

func (e *Env) Lookup(name string) (Value, bool) {
	for _, b := range e.bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

func (e *Env) Bindings() []Binding {
	return slices.Clone(e.bindings)
}

func (e *Env) Len() int {
	return len(e.bindings)
}

func (e *Env) Clear() {
	e.bindings = nil
}

// MarshalYAML renders the bindings as a sequence of one-entry mappings, keeping order and duplicates.
func (e *Env) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind: yaml.SequenceNode,
	}
	for _, b := range e.bindings {
		node.Content = append(node.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.Name},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.Value.String()},
			},
		})
	}
	return node, nil
}

func (e *Env) Dump(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(e); err != nil {
		return err
	}
	return encoder.Close()
}
