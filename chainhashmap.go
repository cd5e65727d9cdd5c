package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/storage/separatechaining"
)

// Mode - Selects how Search and Delete treat the bucket chain a key hashes to
type Mode int

const (
	// Strict - Search and Delete walk the chain and act on the first record with a matching key.
	Strict Mode = iota
	// HeadOnly - Search and Delete act on the head of the chain without looking at its key. It is deliberately wrong
	// and exists to measure what the shortcut costs in correctness.
	HeadOnly
)

// ModeFromOptimize - Maps an "optimize" flag onto a Mode, true being HeadOnly and false being Strict
func ModeFromOptimize(optimize bool) Mode {
	if optimize {
		return HeadOnly
	}
	return Strict
}

// String - Returns the name of the mode
func (M Mode) String() string {
	switch M {
	case Strict:
		return "strict"
	case HeadOnly:
		return "head-only"
	default:
		return fmt.Sprintf("mode(%d)", int(M))
	}
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - LongestChain is the number of records in the longest bucket chain
//   - EmptyBuckets is the number of buckets without any record
//   - BucketDistribution is the number of records stored in each bucket
type TableStat struct {
	Records            int64
	LongestChain       int64
	EmptyBuckets       int64
	BucketDistribution []int64
}

// ChainHashMap - The main implementation struct, a fixed size separate chaining hash map from int64 keys to values of
// type V. Duplicate keys are kept as independent records. It is not safe for concurrent use.
type ChainHashMap[V any] struct {
	buckets       *separatechaining.Buckets[V]
	hashAlgorithm hashfunc.HashAlgorithm
	universe      int64
	tableSize     int64
	mode          Mode
}

// New - Returns a new hash map with tableSize empty buckets.
//   - universe is the max key value expected, keys outside it are accepted but the hash algorithm was not built for them
//   - tableSize is the fixed number of buckets, it must be at least 1
//   - hashAlgorithm is the bucket selection algorithm, its table size must equal tableSize
//   - mode selects the Search and Delete semantics
//
// It returns:
//   - chainHashMap is a pointer to a ChainHashMap struct
//   - err is of type InvalidTableSize if tableSize is less than 1, or a standard error for any other bad configuration
func New[V any](universe, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm, mode Mode) (
	chainHashMap *ChainHashMap[V],
	err error,
) {
	// Check if tableSize is valid
	if tableSize < 1 {
		err = InvalidTableSize{}
		return
	}

	// Check if the hash algorithm is usable for this table
	if hashAlgorithm == nil {
		err = fmt.Errorf("hash algorithm can not be nil")
		return
	}
	if hashAlgorithm.GetTableSize() != tableSize {
		err = fmt.Errorf("hash algorithm distributes over %d buckets but table size is %d",
			hashAlgorithm.GetTableSize(), tableSize)
		return
	}

	// Check if mode is valid
	if mode != Strict && mode != HeadOnly {
		err = fmt.Errorf("unknown mode %d", int(mode))
		return
	}

	buckets, err := separatechaining.NewBuckets[V](tableSize)
	if err != nil {
		return
	}

	chainHashMap = &ChainHashMap[V]{
		buckets:       buckets,
		hashAlgorithm: hashAlgorithm,
		universe:      universe,
		tableSize:     tableSize,
		mode:          mode,
	}

	return
}

// GetTableParameters - Returns the fixed parameters of the hash map
func (C *ChainHashMap[V]) GetTableParameters() model.TableParameters {
	return model.TableParameters{
		Universe:      C.universe,
		TableSize:     C.tableSize,
		Mode:          C.mode.String(),
		HashAlgorithm: fmt.Sprint(C.hashAlgorithm),
	}
}

// GetMode - Returns the mode the hash map was created with
func (C *ChainHashMap[V]) GetMode() Mode {
	return C.mode
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
func (C *ChainHashMap[V]) Stat() (tableStat TableStat) {
	tableStat.BucketDistribution = make([]int64, C.tableSize)

	for i := int64(0); i < C.tableSize; i++ {
		n := C.buckets.Len(i)
		tableStat.BucketDistribution[i] = n
		tableStat.Records += n
		if n == 0 {
			tableStat.EmptyBuckets++
		}
		if n > tableStat.LongestChain {
			tableStat.LongestChain = n
		}
	}

	return
}
