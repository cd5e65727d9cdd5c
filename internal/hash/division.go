package hash

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// DivisionHashAlgorithm - The deterministic bucket selection algorithm, bucket = key mod tableSize.
// Two instances with the same table size place every key in the same bucket.
type DivisionHashAlgorithm struct {
	universe  int64
	tableSize int64
}

// NewDivisionHashAlgorithm - Returns a pointer to a new DivisionHashAlgorithm instance
//   - universe is the max key value expected, it is kept for information only
//   - tableSize is the number of buckets to distribute over
func NewDivisionHashAlgorithm(universe, tableSize int64) *DivisionHashAlgorithm {
	return &DivisionHashAlgorithm{universe: universe, tableSize: tableSize}
}

// Evaluate - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DivisionHashAlgorithm) Evaluate(key int64) int64 {
	return utils.FloorMod(key, D.tableSize)
}

// GetTableSize - Returns the table size the algorithm distributes over
func (D *DivisionHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// GetUniverse - Returns the max key value the algorithm was built for
func (D *DivisionHashAlgorithm) GetUniverse() int64 {
	return D.universe
}

// String - Returns a short description of the algorithm
func (D *DivisionHashAlgorithm) String() string {
	return fmt.Sprintf("division(m=%d)", D.tableSize)
}
