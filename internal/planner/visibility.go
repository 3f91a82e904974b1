package planner

// Visibility maps a group key to its explicit visibility flag.
// Keys without an entry are visible by default; only an explicit false hides.
type Visibility map[string]bool

// IsVisible returns the stored flag, or true when the key is absent.
func (v Visibility) IsVisible(key string) bool {
	val, ok := v[key]
	return !ok || val
}

// Set stores an explicit flag for key.
func (v Visibility) Set(key string, visible bool) {
	v[key] = visible
}

// Toggle flips the effective value, treating an absent key as visible.
func (v Visibility) Toggle(key string) {
	v[key] = !v.IsVisible(key)
}

// ToggleAll bulk-updates every known key: when all of them are currently
// visible they all become hidden, otherwise they all become visible. The
// all-visible check runs once against the pre-mutation state.
func (v Visibility) ToggleAll(keys []string) {
	if len(keys) == 0 {
		return
	}
	allVisible := true
	for _, key := range keys {
		if !v.IsVisible(key) {
			allVisible = false
			break
		}
	}
	for _, key := range keys {
		v[key] = !allVisible
	}
}

// Reconcile carries an edited course's visibility across a group-key change.
// Only an explicit entry for oldKey is copied; the implicit default is not
// propagated. The oldKey entry stays in place (pruning happens on delete).
func (v Visibility) Reconcile(oldKey, newKey string) {
	if oldKey == newKey {
		return
	}
	if val, ok := v[oldKey]; ok {
		v[newKey] = val
	}
}

// Clone returns an independent deep copy.
func (v Visibility) Clone() Visibility {
	cp := make(Visibility, len(v))
	for k, val := range v {
		cp[k] = val
	}
	return cp
}
