package storage

import (
	"fmt"
	"slices"
	"strings"
)

// Changes lists what differs from prev to s, one line per difference,
// ordered by key: "+ key" for additions, "- key" for removals and
// "~ key: field old -> new" for changed fields. A nil prev counts as empty.
func (s *Snapshot) Changes(prev *Snapshot) []string {
	before := map[string]EnchantmentData{}
	if prev != nil {
		for _, e := range prev.Enchantments {
			before[e.Key] = e
		}
	}
	after := make(map[string]EnchantmentData, len(s.Enchantments))
	for _, e := range s.Enchantments {
		after[e.Key] = e
	}

	keys := make([]string, 0, len(before)+len(after))
	for k := range before {
		keys = append(keys, k)
	}
	for k := range after {
		if _, ok := before[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []string
	for _, k := range keys {
		old, had := before[k]
		cur, has := after[k]
		switch {
		case !had:
			out = append(out, "+ "+k)
		case !has:
			out = append(out, "- "+k)
		default:
			out = append(out, fieldChanges(k, old, cur)...)
		}
	}
	return out
}

func fieldChanges(key string, old, cur EnchantmentData) []string {
	var out []string
	changed := func(field string, a, b any) {
		out = append(out, fmt.Sprintf("~ %s: %s %v -> %v", key, field, a, b))
	}
	if old.Kind != cur.Kind {
		changed("kind", old.Kind, cur.Kind)
	}
	if old.MaxLevel != cur.MaxLevel {
		changed("max_level", old.MaxLevel, cur.MaxLevel)
	}
	if !slices.Equal(old.Conflicts, cur.Conflicts) {
		changed("conflicts", "["+strings.Join(old.Conflicts, ", ")+"]", "["+strings.Join(cur.Conflicts, ", ")+"]")
	}
	return out
}
