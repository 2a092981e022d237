package rhmap

// Bucket is a single slot of the backing array: a probe-distance counter, a
// cached hash of the stored record, and the record payload itself. It is
// exported only so a custom Allocator can name the slice type it must
// allocate (mirroring cockroachdb/swiss's exported-but-opaque Slot[K,V]);
// its fields are unexported, since no caller ever needs to read or write
// them directly.
//
// dist == 0 means the slot is empty. dist == 1 means the record sits in its
// home bucket (hash&mask). dist == n means the record is n-1 slots past its
// home, wrapping on mask. This is the spec's probe-distance convention,
// chosen over a raw "occupied" bool so that Robin Hood comparisons (which
// slot is "richer") need no extra bookkeeping field.
type Bucket[T any] struct {
	dist uint32
	hash uint64
	elem T
}

func (b *Bucket[T]) empty() bool {
	return b.dist == 0
}

// clearHighBit drops the top bit of a cached hash per spec §4.7, so that an
// implementation reusing that bit as an occupancy tag (this one does not;
// it uses dist) still compares identical values to one that does.
func clearHighBit(h uint64) uint64 {
	return h &^ (1 << 63)
}
