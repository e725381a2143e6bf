package convert

// Dedup assigns stable sequential identifiers to entities referenced by
// natural key. It keeps two structures on purpose: an insertion-ordered key
// sequence (output order) and a key-to-id index, so output order never
// depends on map iteration.
type Dedup struct {
	ids  map[string]int
	keys []string
}

func NewDedup() *Dedup {
	return &Dedup{ids: make(map[string]int)}
}

// Resolve returns the identifier for a natural key, allocating the next
// sequential id (starting at 1) on first sight. The second return reports
// whether the key was newly created. Keys are never removed or merged
// within a run; callers normalize (uppercase + trim) before resolving.
func (d *Dedup) Resolve(key string) (int, bool) {
	if id, ok := d.ids[key]; ok {
		return id, false
	}
	id := len(d.keys) + 1
	d.ids[key] = id
	d.keys = append(d.keys, key)
	return id, true
}

// Len reports how many distinct keys have been seen.
func (d *Dedup) Len() int {
	return len(d.keys)
}

// Keys returns the natural keys in first-seen order.
func (d *Dedup) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}
