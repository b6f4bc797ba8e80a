package enchant

import (
	"fmt"
	"sort"
	"strings"
)

// MinecraftNamespace is assumed when a key is written without one.
const MinecraftNamespace = "minecraft"

// Key is a namespaced enchantment identifier such as minecraft:sharpness.
type Key struct {
	Namespace string
	Name      string
}

// MinecraftKey returns the vanilla key for name.
func MinecraftKey(name string) Key {
	return Key{Namespace: MinecraftNamespace, Name: name}
}

// ParseKey parses "namespace:name" or a bare "name" in the minecraft
// namespace. Input is lower-cased before validation.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	ns, name, found := strings.Cut(s, ":")
	if !found {
		ns, name = MinecraftNamespace, ns
	}
	if ns == "" || name == "" {
		return Key{}, fmt.Errorf("invalid key %q: empty namespace or name", s)
	}
	if !validKeyPart(ns, false) {
		return Key{}, fmt.Errorf("invalid key %q: bad namespace", s)
	}
	if !validKeyPart(name, true) {
		return Key{}, fmt.Errorf("invalid key %q: bad name", s)
	}
	return Key{Namespace: ns, Name: name}, nil
}

// MustParseKey is ParseKey for literals; it panics on error.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func validKeyPart(s string, allowSlash bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}

func (k Key) String() string {
	return k.Namespace + ":" + k.Name
}

// IsZero reports whether k is the empty key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// KeySet is a set of keys. A nil KeySet is distinct from an empty one
// wherever absence carries meaning (see OverrideData).
type KeySet map[Key]struct{}

// NewKeySet always returns a non-nil set.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// ParseKeySet parses every entry with ParseKey.
func ParseKeySet(raw []string) (KeySet, error) {
	s := make(KeySet, len(raw))
	for _, r := range raw {
		k, err := ParseKey(r)
		if err != nil {
			return nil, err
		}
		s[k] = struct{}{}
	}
	return s, nil
}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

// Keys returns the members sorted by their string form.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Clone returns a copy; the clone of a nil set is nil.
func (s KeySet) Clone() KeySet {
	if s == nil {
		return nil
	}
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}
