// Package groups resolves physical keys into logical color groups based on
// the configuration's group sections.
package groups

import (
	"fmt"
	"strings"

	"github.com/monkeypaint-cli/monkeypaint/keyboard"
)

// ID names a logical color group, taken from the defining section's name.
type ID string

// Section is one parsed group section from the configuration: a name and its
// ordered member key list.
type Section struct {
	Name string   `mapstructure:"name" json:"name"`
	Keys []string `mapstructure:"keys" json:"keys"`
}

// ConfigError reports an invalid or unresolvable group configuration.
type ConfigError struct {
	Section string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Section == "" {
		return e.Reason
	}
	return fmt.Sprintf("section %q: %s", e.Section, e.Reason)
}

// Registry holds the key-to-group resolution for one invocation.
type Registry struct {
	prefix string
	order  []ID
	byKey  map[keyboard.Key]ID
}

// New builds a Registry from the sections whose name begins with the chosen
// prefix, iterated in declaration order. A key named by several sections of
// the same prefix resolves to the last section declaring it, while the group
// order is fixed by each section's first declaration.
func New(prefix string, sections []Section) (*Registry, error) {
	r := &Registry{
		prefix: prefix,
		byKey:  make(map[keyboard.Key]ID),
	}

	seen := make(map[ID]bool)
	for _, section := range sections {
		if !strings.HasPrefix(section.Name, prefix) {
			continue
		}

		id := ID(section.Name)
		if !seen[id] {
			seen[id] = true
			r.order = append(r.order, id)
		}

		for _, name := range section.Keys {
			k, ok := keyboard.Lookup(name)
			if !ok {
				return nil, &ConfigError{
					Section: section.Name,
					Reason: fmt.Sprintf(
						"unknown key %q, did you mean %q?",
						name, keyboard.Suggest(name),
					),
				}
			}
			r.byKey[k] = id
		}
	}

	if len(r.order) == 0 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("no group sections match prefix %q", prefix),
		}
	}

	return r, nil
}

// Prefix returns the grouping prefix this registry was built for.
func (r *Registry) Prefix() string {
	return r.prefix
}

// Order returns the group identifiers in first-declaration order.
// Callers must not mutate the returned slice.
func (r *Registry) Order() []ID {
	return r.order
}

// Count returns the number of distinct groups in the set.
func (r *Registry) Count() int {
	return len(r.order)
}

// Of resolves a key to its effective group.
func (r *Registry) Of(k keyboard.Key) (ID, bool) {
	id, ok := r.byKey[k]
	return id, ok
}
