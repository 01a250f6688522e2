package planning

// LocalStock maps an ingredient id to the quantity the user already owns.
// Values are treated as immutable: the update helpers return a copy.
type LocalStock map[int]int

// Get returns the declared stock for id, zero when unknown.
func (s LocalStock) Get(id int) int {
	if s == nil {
		return 0
	}
	return s[id]
}

// With returns a copy of s where id holds qty. A non-positive qty removes the entry.
func (s LocalStock) With(id, qty int) LocalStock {
	out := make(LocalStock, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	if qty <= 0 {
		delete(out, id)
		return out
	}
	out[id] = qty
	return out
}

// Without returns a copy of s with id removed.
func (s LocalStock) Without(id int) LocalStock {
	return s.With(id, 0)
}
