package planning

// Selection is the set of ingredient ids the user will craft themselves
// instead of buying. Unselected is the default state.
type Selection map[int]struct{}

// NewSelection builds a selection from a list of ids.
func NewSelection(ids ...int) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Toggle returns a copy of s with the selection state of id flipped.
func (s Selection) Toggle(id int) Selection {
	out := make(Selection, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[id]; ok {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the selected ids in no particular order.
func (s Selection) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
