package domain

import "sort"

// SelectionSet is the set of category IDs the user toggled on.
// The zero value is an empty selection ready to use.
type SelectionSet struct {
	ids map[int64]struct{}
}

func NewSelectionSet(ids ...int64) SelectionSet {
	s := SelectionSet{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Toggle removes id when present and adds it otherwise.
// It reports whether id is selected afterwards.
func (s *SelectionSet) Toggle(id int64) bool {
	if s.Contains(id) {
		delete(s.ids, id)
		return false
	}
	s.add(id)
	return true
}

func (s *SelectionSet) add(id int64) {
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.ids[id] = struct{}{}
}

func (s SelectionSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s SelectionSet) Len() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order.
func (s SelectionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s SelectionSet) Clone() SelectionSet {
	return NewSelectionSet(s.IDs()...)
}

func (s SelectionSet) Equal(other SelectionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
