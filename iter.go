package rhmap

// Scan visits every occupied bucket in storage order, calling iter on each
// record. If iter returns false, Scan stops early and returns false; if
// every occupied bucket is visited, it returns true.
//
// Mutating the table from inside iter is undefined behavior per spec §9;
// this implementation resolves that open question defensively: it panics
// if it detects that iter changed the table, rather than let the next
// loop iteration read a backing array it no longer understands.
func (t *Table[T]) Scan(iter func(item T) bool) bool {
	snapshot := t.mutations
	for i := range t.buckets {
		if t.buckets[i].empty() {
			continue
		}
		item := t.buckets[i].elem
		cont := iter(item)
		if t.mutations != snapshot {
			panic("rhmap: Table mutated from inside a Scan callback")
		}
		if !cont {
			return false
		}
	}
	return true
}

// Iter advances *cursor to the next occupied bucket at or after its
// current value, returns that record and true, and leaves the cursor
// positioned just past it. When no further occupied bucket exists it
// returns the zero value and false, leaving the cursor at len(buckets).
//
// The caller owns the cursor and should initialize it to 0 before the
// first call:
//
//	var cursor uint64
//	for {
//		item, ok := t.Iter(&cursor)
//		if !ok {
//			break
//		}
//		// use item
//	}
func (t *Table[T]) Iter(cursor *uint64) (T, bool) {
	var zero T
	for *cursor < uint64(len(t.buckets)) {
		slot := &t.buckets[*cursor]
		*cursor++
		if !slot.empty() {
			return slot.elem, true
		}
	}
	return zero, false
}

// Probe returns the record at bucket position&mask, or the zero value and
// false if that bucket is empty. It is meant for sampling and debugging,
// not for key lookups — use Get for that.
func (t *Table[T]) Probe(position uint64) (T, bool) {
	var zero T
	if len(t.buckets) == 0 {
		return zero, false
	}
	slot := &t.buckets[position&t.mask]
	if slot.empty() {
		return zero, false
	}
	return slot.elem, true
}
