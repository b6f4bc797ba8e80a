package enchant

var (
	_ Enchantment = (*Override)(nil)
	_ Unwrapper   = (*Override)(nil)
)

// OverrideData replaces host answers for one enchantment. A nil MaxLevel or
// a nil Conflicts defers that query to the host; a non-nil empty Conflicts
// set means the enchantment conflicts with nothing.
type OverrideData struct {
	MaxLevel  *int
	Conflicts KeySet
}

// IsZero reports whether d overrides nothing.
func (d OverrideData) IsZero() bool {
	return d.MaxLevel == nil && d.Conflicts == nil
}

// Override presents a host enchantment with plugin override data applied to
// its max level and conflict checks. Every other query is forwarded to the
// base enchantment. The override data is copied on construction and never
// changes afterwards.
type Override struct {
	base      Enchantment
	maxLevel  int
	hasMax    bool
	conflicts KeySet
}

func NewOverride(base Enchantment, data OverrideData) *Override {
	o := &Override{
		base:      base,
		conflicts: data.Conflicts.Clone(),
	}
	if data.MaxLevel != nil {
		o.maxLevel = *data.MaxLevel
		o.hasMax = true
	}
	return o
}

func (o *Override) Key() Key { return o.base.Key() }

func (o *Override) Curse() bool { return o.base.Curse() }

func (o *Override) Treasure() bool { return o.base.Treasure() }

// Unwrap returns the host enchantment.
func (o *Override) Unwrap() Enchantment { return o.base }

// MaxLevel returns the overridden level when one is set.
func (o *Override) MaxLevel() int {
	if o.hasMax {
		return o.maxLevel
	}
	return o.base.MaxLevel()
}

// ConflictsWith lets a plugin-defined other decide first, then consults the
// override conflict set, and only then falls back to the host rule.
func (o *Override) ConflictsWith(other Enchantment) bool {
	if d, ok := other.(ConflictDecider); ok {
		return d.DecideConflict(o)
	}
	if o.conflicts != nil {
		return o.conflicts.Has(other.Key())
	}
	return o.base.ConflictsWith(other)
}

// Data returns a copy of the override data.
func (o *Override) Data() OverrideData {
	d := OverrideData{Conflicts: o.conflicts.Clone()}
	if o.hasMax {
		m := o.maxLevel
		d.MaxLevel = &m
	}
	return d
}

// Register submits o to r.
func (o *Override) Register(r Registrar) {
	r.Register(o)
}
