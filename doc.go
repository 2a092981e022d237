/*
Package rhmap implements an in-memory hash table over records supplied by the
caller, using open addressing with Robin Hood probe-length balancing and
backward-shift deletion.

A Table[T] maps records of type T to themselves: a record embeds both its
key and value fields, and the caller's hash and equality functions decide
identity. This mirrors a C-style "item to item" hash map (the table never
splits a record into a separate key and value), adapted to a generic type
parameter instead of a runtime element size.

Basic usage:

	type user struct {
		Name string
		Age  int
	}

	m, err := rhmap.New[user](
		func(u *user, seed0, seed1 uint64) uint64 {
			return rhmap.Sip64([]byte(u.Name), seed0, seed1)
		},
		func(a, b *user, _ any) int {
			if a.Name == b.Name {
				return 0
			}
			return 1
		},
	)
	if err != nil {
		panic(err)
	}

	m.Set(user{Name: "Dale", Age: 44})
	u, ok := m.Get(user{Name: "Dale"})

Implementation notes:

  - Buckets are never tombstoned. Deletion backward-shifts every later
    entry in the probe chain one slot closer to home, so an empty slot
    always means "nothing has ever probed past here".
  - Insertion applies the Robin Hood rule: an entry that has traveled
    farther from its home bucket than the one currently occupying a slot
    displaces it, bounding the variance of probe lengths across the table.
  - The table grows at ~75% load and may shrink at ~10% load, never below
    its initial capacity floor.
  - Get, Set, Delete, Scan, Iter and Probe hand back copies of records,
    never references into the backing array, so a later mutating call
    does not change a record already returned. There is no
    concurrent-access support; callers needing it must hold their own
    lock around every call.
*/
package rhmap
