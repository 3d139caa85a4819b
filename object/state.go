// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// WidgetState holds an object's own visibility and enabled flags,
// before combining with ancestors. Widget types keep it in the
// registry so that effective-state queries can walk the tree without
// touching the widgets themselves. Objects that never initialize it,
// such as non-widget helpers interposed in a widget tree, are
// transparent to the effective-state queries.
type WidgetState struct {
	Visible bool
	Enabled bool
}

// InitWidgetState sets the object's own widget state, replacing any
// prior state.
func (r *Registry) InitWidgetState(id ObjectID, state WidgetState) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	d.state = &state
	return nil
}

// SetWidgetVisible sets the object's own visible flag, initializing
// widget state with Enabled true if the object has none yet.
func (r *Registry) SetWidgetVisible(id ObjectID, visible bool) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	if d.state == nil {
		d.state = &WidgetState{Visible: visible, Enabled: true}
		return nil
	}
	d.state.Visible = visible
	return nil
}

// SetWidgetEnabled sets the object's own enabled flag, initializing
// widget state with Visible true if the object has none yet.
func (r *Registry) SetWidgetEnabled(id ObjectID, enabled bool) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	if d.state == nil {
		d.state = &WidgetState{Visible: true, Enabled: enabled}
		return nil
	}
	d.state.Enabled = enabled
	return nil
}

// WidgetStateOf returns a copy of the object's own widget state, or
// nil if it was never initialized.
func (r *Registry) WidgetStateOf(id ObjectID) (*WidgetState, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	if d.state == nil {
		return nil, nil
	}
	state := *d.state
	return &state, nil
}

// EffectivelyVisible reports whether the object is visible once all
// ancestor visibility is taken into account: the object's own flag
// must be true and so must the flag of every ancestor that carries
// widget state. Ancestors without widget state are skipped. ok is
// false if the object itself has no widget state; err is non-nil only
// if the identifier does not resolve.
func (r *Registry) EffectivelyVisible(id ObjectID) (visible, ok bool, err error) {
	return r.effectiveFlag(id, func(s *WidgetState) bool { return s.Visible })
}

// EffectivelyEnabled reports whether the object is enabled once all
// ancestor enabled flags are taken into account, with the same
// semantics as [Registry.EffectivelyVisible].
func (r *Registry) EffectivelyEnabled(id ObjectID) (enabled, ok bool, err error) {
	return r.effectiveFlag(id, func(s *WidgetState) bool { return s.Enabled })
}

func (r *Registry) effectiveFlag(id ObjectID, flag func(*WidgetState) bool) (bool, bool, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return false, false, ErrInvalidObjectID
	}
	if d.state == nil {
		return false, false, nil
	}
	if !flag(d.state) {
		return false, true, nil
	}
	for cur := d.parent; !cur.IsNil(); {
		ad, ok := r.objects.Get(cur)
		if !ok {
			break
		}
		if ad.state != nil && !flag(ad.state) {
			return false, true, nil
		}
		cur = ad.parent
	}
	return true, true, nil
}
