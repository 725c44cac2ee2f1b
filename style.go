package glimmer

// Style is a shareable record of named appearance properties consumed by
// widget drawing (colors, borders, padding). Several widgets may share one
// underlying record; the record is copy-on-write: a mutation through a
// handle whose record is shared with other widgets detaches a private copy
// first, so the other sharers are unaffected.
//
// Widgets cache the resolved values of the properties they draw with and
// recompute them when notified of a named-property change.
type Style struct {
	data  *styleData
	owner styleObserver // the widget observing through this handle, may be nil
}

type styleData struct {
	refs      int
	props     map[string]any
	observers []styleObserver
}

// styleObserver receives named-property change notifications.
// Widgets implement it to refresh their cached resolved values.
type styleObserver interface {
	styleChanged(property string)
}

// newStyle creates an unshared style seeded with the given defaults.
func newStyle(defaults map[string]any) *Style {
	props := make(map[string]any, len(defaults))
	for k, v := range defaults {
		props[k] = v
	}
	return &Style{data: &styleData{refs: 1, props: props}}
}

// Set changes a named property. If the underlying record is shared with
// other widgets, this handle detaches a private copy before writing, so
// only the widget owning this handle sees the change.
func (s *Style) Set(property string, value any) {
	if s.data.refs > 1 {
		s.detach()
	}
	s.data.props[property] = value
	for _, o := range s.data.observers {
		o.styleChanged(property)
	}
}

// Get returns the raw value of a named property, or nil when unset.
func (s *Style) Get(property string) any {
	return s.data.props[property]
}

// Color returns a color property, falling back to def when unset or of the
// wrong type.
func (s *Style) Color(property string, def uint32) uint32 {
	if v, ok := s.data.props[property].(uint32); ok {
		return v
	}
	return def
}

// Float returns a float property, falling back to def.
func (s *Style) Float(property string, def float32) float32 {
	if v, ok := s.data.props[property].(float32); ok {
		return v
	}
	return def
}

// SharedBy returns how many handles currently share the underlying record.
func (s *Style) SharedBy() int {
	return s.data.refs
}

// detach gives this handle its own private copy of the record. The handle
// owner's observer subscription moves to the copy; other sharers keep
// observing the original.
func (s *Style) detach() {
	old := s.data
	old.refs--
	if s.owner != nil {
		removeObserver(old, s.owner)
	}
	props := make(map[string]any, len(old.props))
	for k, v := range old.props {
		props[k] = v
	}
	s.data = &styleData{refs: 1, props: props}
	if s.owner != nil {
		s.data.observers = append(s.data.observers, s.owner)
	}
}

// subscribeOwner registers the handle's owner for change notifications.
func (s *Style) subscribeOwner() {
	if s.owner != nil {
		s.data.observers = append(s.data.observers, s.owner)
	}
}

// share returns a new handle on the same underlying record for the given
// owner, which is subscribed for change notifications.
func (s *Style) share(owner styleObserver) *Style {
	s.data.refs++
	handle := &Style{data: s.data, owner: owner}
	if owner != nil {
		s.data.observers = append(s.data.observers, owner)
	}
	return handle
}

// release drops this handle's reference and subscription, used when a
// widget replaces its style or is destroyed.
func (s *Style) release() {
	s.data.refs--
	if s.owner != nil {
		removeObserver(s.data, s.owner)
	}
}

func removeObserver(d *styleData, o styleObserver) {
	for i, obs := range d.observers {
		if obs == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return
		}
	}
}
