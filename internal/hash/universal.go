package hash

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/utils"
	"math/bits"
	"math/rand"
	"time"
)

// UniversalHashAlgorithm - The randomized bucket selection algorithm h(x) = ((a*x + b) mod p) mod tableSize, where p
// is the smallest prime bigger than the universe and a, b are drawn uniformly from [0, p) once at construction.
// The draw is made from a generator owned by the instance, so the same seed always gives the same (p, a, b).
// A draw of a = 0 is legal and turns the algorithm into a constant function.
type UniversalHashAlgorithm struct {
	universe  int64
	tableSize int64
	prime     int64
	a         int64
	b         int64
}

// NewUniversalHashAlgorithm - Returns a pointer to a new UniversalHashAlgorithm instance
//   - universe is the max key value expected, the prime is searched for strictly above it
//   - tableSize is the number of buckets to distribute over
//   - seed is an optional seed for drawing the coefficients, if nil process entropy is used
func NewUniversalHashAlgorithm(universe, tableSize int64, seed *int64) *UniversalHashAlgorithm {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = entropySeed()
	}
	r := rand.New(rand.NewSource(s))

	prime := utils.NextPrime(universe)

	return &UniversalHashAlgorithm{
		universe:  universe,
		tableSize: tableSize,
		prime:     prime,
		a:         r.Int63n(prime),
		b:         r.Int63n(prime),
	}
}

// Evaluate - Given key it generates an index (bucket) between 0 and table size - 1
// The affine step is done in 128 bits so that a*key can not overflow whatever the universe.
func (U *UniversalHashAlgorithm) Evaluate(key int64) int64 {
	p := uint64(U.prime)
	x := uint64(utils.FloorMod(key, U.prime))

	hi, lo := bits.Mul64(uint64(U.a), x)
	lo, carry := bits.Add64(lo, uint64(U.b), 0)
	hi += carry

	return int64(bits.Rem64(hi, lo, p)) % U.tableSize
}

// GetTableSize - Returns the table size the algorithm distributes over
func (U *UniversalHashAlgorithm) GetTableSize() int64 {
	return U.tableSize
}

// GetUniverse - Returns the max key value the algorithm was built for
func (U *UniversalHashAlgorithm) GetUniverse() int64 {
	return U.universe
}

// GetCoefficients - Returns the prime and the two coefficients drawn at construction
func (U *UniversalHashAlgorithm) GetCoefficients() (p, a, b int64) {
	return U.prime, U.a, U.b
}

// String - Returns a short description of the algorithm
func (U *UniversalHashAlgorithm) String() string {
	return fmt.Sprintf("universal(m=%d, p=%d, a=%d, b=%d)", U.tableSize, U.prime, U.a, U.b)
}

// entropySeed - Returns a seed from the operating system's random source, falling back to the clock
func entropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(buf[:]))
}
