package rhmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinhoodmap/rhmap"
)

func TestProbe(t *testing.T) {
	tbl := newTestTable(t)
	tbl.Set(record{Key: "only-one", Val: 9})

	var found record
	var hit bool
	for pos := uint64(0); pos < 16; pos++ {
		if r, ok := tbl.Probe(pos); ok {
			found, hit = r, true
		}
	}
	require.True(t, hit)
	assert.Equal(t, record{Key: "only-one", Val: 9}, found)

	_, ok := tbl.Probe(1 << 40)
	// position is masked, so this is equivalent to some in-range probe and
	// must not panic either way.
	_ = ok
}

func TestProbeEmptyTable(t *testing.T) {
	tbl := newTestTable(t)
	_, ok := tbl.Probe(0)
	assert.False(t, ok)
}

func TestIterCursorStopsAtEnd(t *testing.T) {
	tbl := newTestTable(t)
	tbl.Set(record{Key: "a", Val: 1})

	var cursor uint64
	_, ok := tbl.Iter(&cursor)
	require.True(t, ok)

	_, ok = tbl.Iter(&cursor)
	assert.False(t, ok)

	// calling again with a cursor already past the end keeps returning false.
	_, ok = tbl.Iter(&cursor)
	assert.False(t, ok)
}

func TestScanMutationPanics(t *testing.T) {
	tbl := newTestTable(t)
	for i := 0; i < 5; i++ {
		tbl.Set(record{Key: fmt.Sprintf("k%d", i), Val: i})
	}

	assert.Panics(t, func() {
		tbl.Scan(func(r record) bool {
			tbl.Set(record{Key: "injected", Val: -1})
			return true
		})
	})
}

func TestScanOverEmptyTable(t *testing.T) {
	tbl := newTestTable(t)
	calls := 0
	complete := tbl.Scan(func(r record) bool {
		calls++
		return true
	})
	assert.True(t, complete)
	assert.Equal(t, 0, calls)
}

var _ rhmap.Allocator[record] = defaultAllocatorLike{}

// defaultAllocatorLike exercises WithAllocator's happy path with a fresh,
// externally defined allocator, showing the interface is implementable
// outside the package (its Bucket[T] parameter is exported for exactly
// this reason).
type defaultAllocatorLike struct{}

func (defaultAllocatorLike) Alloc(n int) ([]rhmap.Bucket[record], error) {
	return make([]rhmap.Bucket[record], n), nil
}

func (defaultAllocatorLike) Free([]rhmap.Bucket[record]) {}

func TestCustomAllocatorHappyPath(t *testing.T) {
	tbl := newTestTable(t, rhmap.WithAllocator[record](defaultAllocatorLike{}))
	tbl.Set(record{Key: "x", Val: 1})
	v, ok := tbl.Get(record{Key: "x"})
	require.True(t, ok)
	assert.Equal(t, 1, v.Val)
}
