package custom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidType is returned for an unrecognised enchantment type name.
var ErrInvalidType = errors.New("invalid enchantment type")

// Type groups plugin enchantments for display.
type Type int

const (
	TypeNormal Type = iota
	TypeCurse
	TypeSpecial
	TypeArtifact
)

var typeNames = map[Type]string{
	TypeNormal:   "normal",
	TypeCurse:    "curse",
	TypeSpecial:  "special",
	TypeArtifact: "artifact",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType accepts the names above in any case. An empty string is normal.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeNormal, nil
	}
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
}
