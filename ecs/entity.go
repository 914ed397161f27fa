package ecs

import "strconv"

// Entity is an opaque identifier: a 32-bit slot index packed with a 32-bit
// generation. A slot is only reused after its generation is bumped, so a
// stale handle held across a removal never aliases the new occupant.
type Entity uint64

type entityIndex uint32
type generation uint32

const entityIndexBits = 32

func makeEntity(idx entityIndex, gen generation) Entity {
	return Entity(uint64(gen)<<entityIndexBits | uint64(idx))
}

func (e Entity) index() entityIndex {
	return entityIndex(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIndexBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether e was produced by a world. The zero Entity is the
// "no entity" sentinel.
func (e Entity) Valid() bool {
	return e.index() != 0
}
