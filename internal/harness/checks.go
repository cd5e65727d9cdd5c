package harness

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/hashfunc"
)

const (
	SectionStrictDivision  = "Strict mode with Division hash"
	SectionStrictUniversal = "Strict mode with Universal hash"
	SectionModeFlag        = "Mode flag sanity check"
)

// Family - Builds the hash algorithm of a table with tableSize buckets
type Family struct {
	Name string
	New  func(universe, tableSize int64) hashfunc.HashAlgorithm
}

// DivisionFamily - Returns the deterministic family
func DivisionFamily() Family {
	return Family{Name: "division", New: chainhashmap.NewDivisionHash}
}

// UniversalFamily - Returns the universal family with a fixed seed
func UniversalFamily(seed int64) Family {
	return Family{
		Name: "universal",
		New: func(universe, tableSize int64) hashfunc.HashAlgorithm {
			return chainhashmap.NewUniversalHashSeeded(universe, tableSize, seed)
		},
	}
}

// DefaultSuite - Returns the console checks: strict mode behaviour with both families and the mode flag sanity check
//   - universe is the max key value of every table
//   - seed seeds the universal family
func DefaultSuite(universe, seed int64) *Suite {
	suite := NewSuite()

	strictSections := []struct {
		name   string
		family Family
	}{
		{name: SectionStrictDivision, family: DivisionFamily()},
		{name: SectionStrictUniversal, family: UniversalFamily(seed)},
	}

	for _, section := range strictSections {
		suite.Add(section.name, BasicUniqueChecks(universe, section.family)...)
		suite.Add(section.name, DuplicateKeyChecks(universe, section.family)...)
		suite.Add(section.name, IsolationChecks(universe, section.family)...)
	}

	suite.Add(SectionModeFlag, ModeFlagChecks(universe)...)

	return suite
}

// newStrictTable - Returns an empty strict table, a construction failure panics and fails the check using it
func newStrictTable[V any](universe, tableSize int64, family Family) *chainhashmap.ChainHashMap[V] {
	table, err := chainhashmap.New[V](universe, tableSize, family.New(universe, tableSize), chainhashmap.Strict)
	if err != nil {
		panic(err)
	}

	return table
}

// notFound - Returns true if err reports a missing record
func notFound(err error) bool {
	return errors.Is(err, chainhashmap.NoRecordFound{})
}

// BasicUniqueChecks - Lookups of unique keys in a table of 101 buckets
func BasicUniqueChecks(universe int64, family Family) (checks []Check) {
	table := newStrictTable[int64](universe, 101, family)
	pairs := [][2]int64{{10, 100}, {20, 200}, {30, 300}, {40, 400}}
	for _, pair := range pairs {
		table.Insert(pair[0], pair[1])
	}

	checks = append(checks, Check{
		Label: fmt.Sprintf("[%s] Search miss returns not found", family.Name),
		Predicate: func() bool {
			_, err := table.Search(999)
			return notFound(err)
		},
	})

	for _, pair := range pairs {
		key, value := pair[0], pair[1]
		checks = append(checks, Check{
			Label: fmt.Sprintf("[%s] Search hit %d returns inserted value", family.Name, key),
			Predicate: func() bool {
				got, err := table.Search(key)
				return err == nil && got == value
			},
		})
	}

	checks = append(checks, Check{
		Label: fmt.Sprintf("[%s] Delete miss returns false (nonexistent key)", family.Name),
		Predicate: func() bool {
			return !table.Delete(999)
		},
	})

	return
}

// DuplicateKeyChecks - Three values under one key in a table of 103 buckets, then deleted one by one
func DuplicateKeyChecks(universe int64, family Family) []Check {
	table := newStrictTable[string](universe, 103, family)
	const key = 12345
	values := []string{"A", "B", "C"}
	for _, v := range values {
		table.Insert(key, v)
	}

	return []Check{
		{
			Label: fmt.Sprintf("[%s] Search(k) after inserts returns one of inserted values", family.Name),
			Predicate: func() bool {
				got, err := table.Search(key)
				if err != nil {
					return false
				}
				for _, v := range values {
					if got == v {
						return true
					}
				}
				return false
			},
		},
		{
			Label: fmt.Sprintf("[%s] Delete(k) removes one matching pair", family.Name),
			Predicate: func() bool {
				if !table.Delete(key) {
					return false
				}
				got, err := table.Search(key)
				return notFound(err) || (err == nil && got == "B")
			},
		},
		{
			Label: fmt.Sprintf("[%s] After deleting remaining copies, search(k) is not found", family.Name),
			Predicate: func() bool {
				for c := 0; table.Delete(key); c++ {
					if c >= len(values) {
						break
					}
				}
				_, err := table.Search(key)
				return notFound(err)
			},
		},
	}
}

// IsolationChecks - Operations on one key must leave another key alone, in a table of 100 buckets
func IsolationChecks(universe int64, family Family) []Check {
	table := newStrictTable[string](universe, 100, family)
	table.Insert(150, "X1")
	table.Insert(250, "Y1")
	table.Insert(150, "X2")

	searchOther := func() bool {
		got, err := table.Search(250)
		return err == nil && got == "Y1"
	}

	return []Check{
		{
			Label:     fmt.Sprintf("[%s] Search other key unaffected", family.Name),
			Predicate: searchOther,
		},
		{
			Label: fmt.Sprintf("[%s] Delete(150) returns true", family.Name),
			Predicate: func() bool {
				return table.Delete(150)
			},
		},
		{
			Label:     fmt.Sprintf("[%s] After deleting 150 once, 250 still present", family.Name),
			Predicate: searchOther,
		},
	}
}

// ModeFlagChecks - The same contents in a strict and a head-only table of 10 division buckets, keys 9, 19, 29 and 39
// share the bucket of the absent key 999. Strict mode must miss it, head-only mode returns the head of that bucket.
func ModeFlagChecks(universe int64) []Check {
	const tableSize = 10
	const absentKey = 999

	hashAlgorithm := chainhashmap.NewDivisionHash(universe, tableSize)
	strict, strictErr := chainhashmap.New[string](universe, tableSize, hashAlgorithm, chainhashmap.Strict)
	headOnly, headOnlyErr := chainhashmap.New[string](universe, tableSize, hashAlgorithm, chainhashmap.HeadOnly)
	if err := errors.Join(strictErr, headOnlyErr); err != nil {
		panic(err)
	}

	for _, k := range []int64{9, 19, 29, 39} {
		strict.Insert(k, fmt.Sprintf("v%d", k))
		headOnly.Insert(k, fmt.Sprintf("v%d", k))
	}

	return []Check{
		{
			Label: "[division] Strict mode returns not found for absent key",
			Predicate: func() bool {
				_, err := strict.Search(absentKey)
				return notFound(err)
			},
		},
		{
			Label: "[division] Head-only mode can return a (wrong) value for absent key",
			Predicate: func() bool {
				_, err := headOnly.Search(absentKey)
				return err == nil
			},
		},
	}
}
