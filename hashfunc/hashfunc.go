package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ChainHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// Evaluate - Given key it generates an index (bucket) between 0 and table size - 1.
	// It must be a pure function of key given the algorithm's fixed parameters, and it must not reject keys outside
	// the universe, whether a key belongs to the universe is the caller's business.
	// Any number returned outside the table size (0 -> table size - 1) is a contract violation and will panic down stream.
	Evaluate(key int64) int64

	// GetTableSize - Returns the table size (number of buckets) the algorithm distributes keys over.
	// A ChainHashMap refuses an algorithm whose table size differs from its own.
	GetTableSize() int64

	// GetUniverse - Returns the max key value the algorithm was built for.
	GetUniverse() int64
}
