package model

// Record - Represents one key/value entry in a bucket chain.
// Next points to the record inserted just before this one in the same bucket, nil at the tail.
type Record[V any] struct {
	Key   int64
	Value V
	Next  *Record[V]
}

// TableParameters - Represents the fixed parameters of a table, set once at construction
//   - Universe is the max key value the hash algorithm was built for
//   - TableSize is the number of buckets
//   - Mode is the name of the search/delete mode in use
//   - HashAlgorithm is a descriptive name of the hash algorithm in use
type TableParameters struct {
	Universe      int64
	TableSize     int64
	Mode          string
	HashAlgorithm string
}
