// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/groups"
)

// groupsKey is the configuration key holding the ordered group section array.
// Sections are declared as TOML array-of-tables so their declaration order
// survives parsing:
//
//	[[group]]
//	name = "split left"
//	keys = ["esc", "f1", "tab"]
const groupsKey = "group"

// GroupSections returns every declared group section in declaration order.
func GroupSections() ([]groups.Section, error) {
	var sections []groups.Section
	if err := viper.UnmarshalKey(groupsKey, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GroupPrefixes derives the distinct grouping prefixes offered by the
// declared sections, preserving declaration order. A section named
// "split left" contributes the prefix "split"; a single-word section name
// contributes itself.
func GroupPrefixes(sections []groups.Section) []string {
	prefixes := lo.Map(sections, func(s groups.Section, _ int) string {
		fields := strings.Fields(s.Name)
		if len(fields) <= 1 {
			return s.Name
		}
		return strings.Join(fields[:len(fields)-1], " ")
	})

	return lo.Uniq(lo.Filter(prefixes, func(p string, _ int) bool {
		return p != ""
	}))
}
