package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
)

// NewDivisionHash - Returns the deterministic key mod tableSize algorithm
//   - universe is the max key value expected
//   - tableSize is the number of buckets to distribute over
func NewDivisionHash(universe, tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewDivisionHashAlgorithm(universe, tableSize)
}

// NewUniversalHash - Returns a randomized ((a*key + b) mod p) mod tableSize algorithm with p the smallest prime above
// universe. With a nil seed the coefficients are drawn from process entropy.
//   - universe is the max key value expected
//   - tableSize is the number of buckets to distribute over
//   - seed is an optional seed making the coefficients reproducible
func NewUniversalHash(universe, tableSize int64, seed *int64) hashfunc.HashAlgorithm {
	return hash.NewUniversalHashAlgorithm(universe, tableSize, seed)
}

// NewUniversalHashSeeded - Same as NewUniversalHash with a mandatory seed
func NewUniversalHashSeeded(universe, tableSize, seed int64) hashfunc.HashAlgorithm {
	return hash.NewUniversalHashAlgorithm(universe, tableSize, &seed)
}
