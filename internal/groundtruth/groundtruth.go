package groundtruth

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Picker - Anything that can draw an index uniform in [0, n)
type Picker interface {
	Intn(n int) int
}

// Multimap - The reference a hash map is checked against. It keeps, per key, the live copies of values in the order
// they were added, and the set of keys with at least one live copy in the order the keys became live.
// Removal takes the newest copy of a key, the same copy a strict hash map unlinks, so a correct table and its
// multimap always hold the same values per key.
type Multimap[V comparable] struct {
	values  map[int64][]V
	live    *orderedmap.OrderedMap[int64, struct{}]
	records int
}

// NewMultimap - Returns a pointer to a new, empty Multimap
func NewMultimap[V comparable]() *Multimap[V] {
	return &Multimap[V]{
		values: make(map[int64][]V),
		live:   orderedmap.NewOrderedMap[int64, struct{}](),
	}
}

// Add - Records one more live copy of (key, value)
func (M *Multimap[V]) Add(key int64, value V) {
	M.values[key] = append(M.values[key], value)
	M.live.Set(key, struct{}{})
	M.records++
}

// RemoveAny - Removes one copy of a value for key, the newest one. The key leaves the live set when its last copy goes.
//
// It returns:
//   - value is the value a copy was removed of
//   - ok is false if key had no live copy
func (M *Multimap[V]) RemoveAny(key int64) (value V, ok bool) {
	copies := M.values[key]
	if len(copies) == 0 {
		return
	}

	value, ok = copies[len(copies)-1], true
	M.records--

	if len(copies) == 1 {
		delete(M.values, key)
		M.live.Delete(key)
	} else {
		M.values[key] = copies[:len(copies)-1]
	}

	return
}

// HasKey - Returns true if key has at least one live copy
func (M *Multimap[V]) HasKey(key int64) bool {
	_, ok := M.live.Get(key)
	return ok
}

// Count - Returns the number of live copies of (key, value)
func (M *Multimap[V]) Count(key int64, value V) (n int) {
	for _, v := range M.values[key] {
		if v == value {
			n++
		}
	}

	return
}

// LiveKeys - Returns the keys with at least one live copy, in the order they became live
func (M *Multimap[V]) LiveKeys() []int64 {
	return M.live.Keys()
}

// Len - Returns the number of live keys
func (M *Multimap[V]) Len() int {
	return M.live.Len()
}

// Records - Returns the total number of live copies over all keys
func (M *Multimap[V]) Records() int {
	return M.records
}

// RandomLiveKey - Picks one of the live keys uniformly, ok is false if there is none
func (M *Multimap[V]) RandomLiveKey(picker Picker) (key int64, ok bool) {
	n := M.live.Len()
	if n == 0 {
		return
	}

	i := picker.Intn(n)
	for el := M.live.Front(); el != nil; el = el.Next() {
		if i == 0 {
			return el.Key, true
		}
		i--
	}

	return
}

// IsCorrect - Judges a search result against the multimap. For a key without live copies only "not found" is correct,
// for a live key the result must be found and be one of its live values.
func (M *Multimap[V]) IsCorrect(key int64, got V, found bool) bool {
	if !M.HasKey(key) {
		return !found
	}

	return found && M.Count(key, got) > 0
}
