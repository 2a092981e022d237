package rhmap

// HashFn computes a 64-bit digest of item, salted by the two table seeds.
// It must be pure and deterministic, and must return identical values for
// any two records EqualFn considers equal.
type HashFn[T any] func(item *T, seed0, seed1 uint64) uint64

// EqualFn reports whether a and b are the same record for the table's
// purposes. It returns 0 iff equal, matching the C callback contract this
// table is modeled on; any nonzero ordering a caller returns is accepted
// but never used, since the table never orders its contents (spec §9's
// first open question). udata is whatever was passed to WithUserData.
type EqualFn[T any] func(a, b *T, udata any) int

// ElemFreeFn is the optional element destructor invoked by Clear and Free
// on every record they discard. It is never invoked by Set's replacement
// path or by Delete.
type ElemFreeFn[T any] func(item *T)

// Table is an open-addressed hash table over records of type T, using
// Robin Hood probe-length balancing and tombstone-free backward-shift
// deletion. See the package doc for the full contract; in short: no
// concurrent access, records are returned as copies rather than references
// into the backing array, unspecified iteration order.
type Table[T any] struct {
	buckets []Bucket[T]
	mask    uint64
	count   int

	cap        int
	initialCap int
	growat     int
	shrinkat   int

	seed0, seed1 uint64

	hash     HashFn[T]
	equal    EqualFn[T]
	elemFree ElemFreeFn[T]
	udata    any
	alloc    Allocator[T]

	oom bool
	// prev is the table-owned scratch buffer backing the "previous record"
	// results of Set (on replace) and Delete, per spec §9's guidance to
	// avoid a per-call allocation for that return value.
	prev T
	// mutations counts every structural change, so Scan can fail fast if
	// its callback mutates the table instead of silently corrupting the
	// backing array (spec §9's second open question).
	mutations uint64
}

// New constructs a Table. hash and equal are required; every other aspect
// of construction (initial capacity, seeds, destructor, user data,
// allocator) is set through Option values. New is the one operation in
// this package's surface that can fail with an explicit error, because it
// is the one call with no existing Table to record an OOM flag on.
func New[T any](hash HashFn[T], equal EqualFn[T], opts ...Option[T]) (*Table[T], error) {
	t := &Table[T]{
		hash:  hash,
		equal: equal,
		alloc: defaultAllocator[T]{},
	}
	for _, opt := range opts {
		opt.apply(t)
	}

	floor := uint64(16)
	if requested := uint64(t.initialCap); requested > floor {
		floor = nextPowerOf2(requested)
	}

	buckets, err := t.alloc.Alloc(int(floor))
	if err != nil {
		return nil, err
	}

	t.buckets = buckets
	t.cap = int(floor)
	t.initialCap = int(floor)
	t.mask = floor - 1
	t.growat = int(floor * 3 / 4)
	t.shrinkat = int(floor / 10)

	return t, nil
}

// Set inserts item, or replaces the record with an equal key. It returns
// the previous record and true if one existed, otherwise the zero value
// and false. If growth was required and the allocator failed, Set is a
// no-op: the table is unchanged, OOM returns true until the next
// successful Set, and the zero value is returned — callers must check OOM
// to tell "not found previously" apart from "failed".
func (t *Table[T]) Set(item T) (T, bool) {
	var zero T

	if t.count >= t.growat {
		if err := t.resize(t.cap * 2); err != nil {
			t.oom = true
			return zero, false
		}
	}
	t.oom = false

	h := clearHighBit(t.hash(&item, t.seed0, t.seed1))
	e := Bucket[T]{dist: 1, hash: h, elem: item}
	idx := h & t.mask

	for {
		slot := &t.buckets[idx]
		if slot.empty() {
			*slot = e
			t.count++
			t.mutations++
			return zero, false
		}
		if slot.hash == e.hash && t.equal(&e.elem, &slot.elem, t.udata) == 0 {
			t.prev = slot.elem
			slot.elem = e.elem
			t.mutations++
			return t.prev, true
		}
		if e.dist > slot.dist {
			e, *slot = *slot, e
		}
		idx = (idx + 1) & t.mask
		e.dist++
	}
}

// Get returns the stored record with the same key as item, or the zero
// value and false if none exists.
func (t *Table[T]) Get(item T) (T, bool) {
	var zero T
	if len(t.buckets) == 0 {
		return zero, false
	}

	h := clearHighBit(t.hash(&item, t.seed0, t.seed1))
	idx := h & t.mask

	for dist := uint32(1); ; dist++ {
		slot := &t.buckets[idx]
		if slot.empty() || slot.dist < dist {
			return zero, false
		}
		if slot.hash == h && t.equal(&item, &slot.elem, t.udata) == 0 {
			return slot.elem, true
		}
		idx = (idx + 1) & t.mask
	}
}

// Delete removes the record with the same key as item and returns it. The
// element destructor, if any, is not invoked — the caller owns the
// returned bytes and any cleanup they imply.
func (t *Table[T]) Delete(item T) (T, bool) {
	var zero T
	if len(t.buckets) == 0 {
		return zero, false
	}

	h := clearHighBit(t.hash(&item, t.seed0, t.seed1))
	idx := h & t.mask

	for dist := uint32(1); ; dist++ {
		slot := &t.buckets[idx]
		if slot.empty() || slot.dist < dist {
			return zero, false
		}
		if slot.hash == h && t.equal(&item, &slot.elem, t.udata) == 0 {
			t.prev = slot.elem
			t.backwardShift(idx)
			t.count--
			t.mutations++

			if t.count <= t.shrinkat && t.cap > t.initialCap {
				_ = t.resize(t.cap / 2) // a shrink failure is silently ignored, per spec §4.4
			}
			return t.prev, true
		}
		idx = (idx + 1) & t.mask
	}
}

// backwardShift removes the occupant of idx and shifts every subsequent
// non-home entry in its probe chain one slot closer to home, eliminating
// the need for a tombstone.
func (t *Table[T]) backwardShift(idx uint64) {
	t.buckets[idx] = Bucket[T]{}
	for {
		next := (idx + 1) & t.mask
		nb := t.buckets[next]
		if nb.empty() || nb.dist == 1 {
			return
		}
		nb.dist--
		t.buckets[idx] = nb
		t.buckets[next] = Bucket[T]{}
		idx = next
	}
}

// Clear removes every record. If the destructor is set it is invoked on
// each one first. When updateCap is true the backing array is also reset
// to the table's initial capacity floor (a failed reallocation leaves the
// current capacity in place, zeroed); when false the capacity is left
// untouched.
func (t *Table[T]) Clear(updateCap bool) {
	if t.elemFree != nil {
		for i := range t.buckets {
			if !t.buckets[i].empty() {
				t.elemFree(&t.buckets[i].elem)
			}
		}
	}

	if updateCap && t.cap != t.initialCap {
		if newBuckets, err := t.alloc.Alloc(t.initialCap); err == nil {
			t.alloc.Free(t.buckets)
			t.buckets = newBuckets
			t.cap = t.initialCap
			t.mask = uint64(t.initialCap - 1)
			t.growat = t.initialCap * 3 / 4
			t.shrinkat = t.initialCap / 10
			t.count = 0
			t.mutations++
			return
		}
	}

	for i := range t.buckets {
		t.buckets[i] = Bucket[T]{}
	}
	t.count = 0
	t.mutations++
}

// Count returns the number of stored records in constant time.
func (t *Table[T]) Count() int {
	return t.count
}

// Free invokes the destructor, if any, on every remaining record and
// releases the backing array. The table must not be used afterward.
func (t *Table[T]) Free() {
	if t.elemFree != nil {
		for i := range t.buckets {
			if !t.buckets[i].empty() {
				t.elemFree(&t.buckets[i].elem)
			}
		}
	}
	t.alloc.Free(t.buckets)
	t.buckets = nil
	t.count = 0
}

// OOM reports whether the most recent Set failed to grow the table. It is
// cleared on every Set that does not require a failing growth.
func (t *Table[T]) OOM() bool {
	return t.oom
}

// resize reallocates the backing array at newCap (clamped to never go
// below the initial capacity floor) and reinserts every occupied bucket
// using its cached hash — no HashFn invocation is needed, and because
// newCap is a power of two at least as large as the table's occupancy
// allows, reinsertion cannot itself require another resize.
func (t *Table[T]) resize(newCap int) error {
	if newCap < t.initialCap {
		newCap = t.initialCap
	}

	newBuckets, err := t.alloc.Alloc(newCap)
	if err != nil {
		return err
	}

	newMask := uint64(newCap - 1)
	for i := range t.buckets {
		if !t.buckets[i].empty() {
			insertCached(newBuckets, newMask, t.buckets[i].hash, t.buckets[i].elem)
		}
	}

	t.alloc.Free(t.buckets)
	t.buckets = newBuckets
	t.cap = newCap
	t.mask = newMask
	t.growat = newCap * 3 / 4
	t.shrinkat = newCap / 10
	return nil
}

// insertCached places elem (with an already-known hash) into buckets via
// the standard Robin Hood probe, with no duplicate check — used only by
// resize, where every entry being reinserted is already known distinct.
func insertCached[T any](buckets []Bucket[T], mask uint64, h uint64, elem T) {
	e := Bucket[T]{dist: 1, hash: h, elem: elem}
	idx := h & mask
	for {
		slot := &buckets[idx]
		if slot.empty() {
			*slot = e
			return
		}
		if e.dist > slot.dist {
			e, *slot = *slot, e
		}
		idx = (idx + 1) & mask
		e.dist++
	}
}
