package imgui

import "hash/fnv"

// ID identifies a window across frames. Child windows hash their name
// together with the parent's ID, so equal names under different parents
// stay distinct.
type ID uint64

func hashID(parent ID, name string) ID {
	h := fnv.New64a()
	var seed [8]byte
	for i := range seed {
		seed[i] = byte(parent >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(name))
	return ID(h.Sum64())
}
