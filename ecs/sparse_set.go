package ecs

// sparseSet is cache-friendly storage for one component type keyed by entity
// slot index. Iteration follows insertion order; removal swaps the last
// element into the hole, so order is not stable across removals.
type sparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *sparseSet) has(idx entityIndex) bool {
	if idx == 0 || int(idx) > len(s.sparse) {
		return false
	}
	di := s.sparse[idx-1]
	return di >= 0 && di < len(s.denseEntities) && s.denseEntities[di].index() == idx
}

func (s *sparseSet) get(idx entityIndex) any {
	if !s.has(idx) {
		return nil
	}
	return s.denseValues[s.sparse[idx-1]]
}

func (s *sparseSet) set(e Entity, v any) {
	idx := e.index()
	if idx == 0 {
		return
	}
	for int(idx) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(idx) {
		s.denseValues[s.sparse[idx-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[idx-1] = len(s.denseEntities) - 1
}

func (s *sparseSet) remove(idx entityIndex) bool {
	if !s.has(idx) {
		return false
	}
	di := s.sparse[idx-1]
	last := len(s.denseEntities) - 1
	lastIdx := s.denseEntities[last].index()

	s.denseEntities[di] = s.denseEntities[last]
	s.denseValues[di] = s.denseValues[last]
	s.sparse[lastIdx-1] = di

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[idx-1] = -1
	return true
}

// entities returns a copy of the dense entity list, so callers may mutate
// the set while iterating.
func (s *sparseSet) entities() []Entity {
	out := make([]Entity, len(s.denseEntities))
	copy(out, s.denseEntities)
	return out
}

func (s *sparseSet) len() int {
	return len(s.denseEntities)
}
