package rhmap

// Allocator is the per-instance allocator triple from spec §6, collapsed to
// the one allocation shape a Table actually needs: a slice of n buckets.
// Adapted from cockroachdb/swiss's Allocator[K,V] (AllocSlots/AllocControls/
// FreeSlots/FreeControls), which is the one hash table in the reference
// pack that takes allocation out of the caller's hands at all; unlike that
// interface's slot/control split (needed for its separate metadata byte
// array), this table keeps probe-distance and cached hash inline in the
// bucket, so one Alloc/Free pair covers it.
//
// Unlike a real malloc/realloc/free triple, Alloc can return an error
// instead of panicking: that is what lets §8's "force allocator failure on
// the next allocation" testable property be expressed directly, by
// supplying a test Allocator whose Alloc returns ErrAllocatorFailure on
// demand. The spec's deprecated process-wide allocator hook (Design Notes
// §9) is intentionally not carried forward; only this per-instance form is
// supported.
type Allocator[T any] interface {
	// Alloc returns a freshly zeroed slice of n buckets, or an error if the
	// allocation cannot be satisfied. On error the caller's state must be
	// left exactly as it was.
	Alloc(n int) ([]Bucket[T], error)
	// Free releases a slice previously returned by Alloc. Implementations
	// backed by the Go heap can make this a no-op; it exists for
	// allocators that manage memory outside the GC.
	Free(buckets []Bucket[T])
}

// defaultAllocator backs every Table that is not given a custom Allocator.
// It never fails: make() either succeeds or the runtime itself panics,
// matching how every other container in the reference pack
// (EinfachAndy/hashmaps, cockroachdb/swiss's own default allocator) treats
// allocation as infallible unless the caller opts into something stricter.
type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Alloc(n int) ([]Bucket[T], error) {
	return make([]Bucket[T], n), nil
}

func (defaultAllocator[T]) Free([]Bucket[T]) {}
