package enchant

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownKey is returned by Lookup when nothing is registered under a key.
var ErrUnknownKey = errors.New("unknown enchantment")

var _ Registrar = (*Registry)(nil)

// Registry holds every enchantment the server knows about, keyed by Key.
// Registration happens at startup; lookups may come from any goroutine.
type Registry struct {
	mu    sync.RWMutex
	byKey map[Key]Enchantment
	order []Key
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[Key]Enchantment)}
}

// Register stores e under its key. Registering a key again replaces the
// previous enchantment but keeps its original position in All.
func (r *Registry) Register(e Enchantment) {
	k := e.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[k]; !ok {
		r.order = append(r.order, k)
	}
	r.byKey[k] = e
}

func (r *Registry) Get(k Key) (Enchantment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byKey[k]
	return e, ok
}

// Lookup parses s as a key and returns the enchantment registered under it.
func (r *Registry) Lookup(s string) (Enchantment, error) {
	k, err := ParseKey(s)
	if err != nil {
		return nil, err
	}
	e, ok := r.Get(k)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
	return e, nil
}

// All returns registered enchantments in first-registration order.
func (r *Registry) All() []Enchantment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Enchantment, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Conflicting returns the members of existing that conflict with e, checked
// from e's side.
func Conflicting(e Enchantment, existing []Enchantment) []Enchantment {
	var out []Enchantment
	for _, x := range existing {
		if e.ConflictsWith(x) {
			out = append(out, x)
		}
	}
	return out
}
