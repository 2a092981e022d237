package rhmap

import "errors"

// ErrAllocatorFailure is returned by an Allocator's Alloc when it cannot
// satisfy a request. New surfaces it directly since there is no table yet
// to carry an OOM flag; Set, which can also trigger an allocation via
// growth, instead swallows it into the OOM flag per spec §4.2.
var ErrAllocatorFailure = errors.New("rhmap: allocator failed to allocate buckets")
