package ecs

// entityStore tracks live generations and recycles slot indices.
type entityStore struct {
	next entityIndex
	gens []generation
	free []entityIndex
}

func (s *entityStore) create() Entity {
	var idx entityIndex
	if len(s.free) > 0 {
		idx = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.next++
		idx = s.next
		s.gens = append(s.gens, 0)
	}
	return makeEntity(idx, s.gens[idx-1])
}

func (s *entityStore) destroy(e Entity) bool {
	idx := e.index()
	if idx == 0 || int(idx) > len(s.gens) {
		return false
	}
	if s.gens[idx-1] != e.generation() {
		return false
	}
	s.gens[idx-1]++
	s.free = append(s.free, idx)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	idx := e.index()
	if idx == 0 || int(idx) > len(s.gens) {
		return false
	}
	return s.gens[idx-1] == e.generation()
}
