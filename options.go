package rhmap

// Option configures a Table at construction time. The pattern is adapted
// from cockroachdb/swiss's option[K,V] (see its options.go WithHash/
// WithAllocator), the one hash table in the reference pack that avoids a
// long positional-argument constructor in favor of composable options.
type Option[T any] interface {
	apply(t *Table[T])
}

type optionFunc[T any] func(t *Table[T])

func (f optionFunc[T]) apply(t *Table[T]) { f(t) }

// WithInitialCap sets the floor capacity (spec §4.1's "requested initial
// capacity"). A value of 0 means "use the 16-bucket floor". The table never
// shrinks below whatever floor this resolves to.
func WithInitialCap[T any](n int) Option[T] {
	return optionFunc[T](func(t *Table[T]) {
		t.initialCap = n
	})
}

// WithSeeds sets the two 64-bit seeds passed to every HashFn invocation.
// Without this option the seeds are both 0, which is deterministic but
// collision-floodable; callers exposed to adversarial keys should supply
// randomly generated seeds.
func WithSeeds[T any](seed0, seed1 uint64) Option[T] {
	return optionFunc[T](func(t *Table[T]) {
		t.seed0, t.seed1 = seed0, seed1
	})
}

// WithElemFree installs the optional element destructor invoked by Clear
// and Free on every record they discard (spec §4.5). It is never invoked
// by Set's replacement path or by Delete, both of which hand the evicted
// bytes back to the caller instead.
func WithElemFree[T any](fn ElemFreeFn[T]) Option[T] {
	return optionFunc[T](func(t *Table[T]) {
		t.elemFree = fn
	})
}

// WithUserData sets the opaque value passed through to EqualFn as its
// third argument on every call.
func WithUserData[T any](udata any) Option[T] {
	return optionFunc[T](func(t *Table[T]) {
		t.udata = udata
	})
}

// WithAllocator overrides the bucket-array allocator. The default
// allocator backs every allocation with make() and never fails.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return optionFunc[T](func(t *Table[T]) {
		t.alloc = a
	})
}
