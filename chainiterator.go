package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/chain"
)

// Entry - A key and value as stored in a bucket chain
type Entry[V any] struct {
	Key   int64
	Value V
}

// ChainRecords - Is used to iterate over the records of one bucket chain one by one, newest first.
// The iterator reads the live chain, modifying the hash map while iterating gives undefined results.
type ChainRecords[V any] struct {
	records *chain.Records[V]
}

// BucketRecords - Returns a pointer to a new ChainRecords struct over the chain of bucketNo
//   - bucketNo is a bucket number in [0, table size)
//
// It returns:
//   - chainRecords is the iterator
//   - err is a standard error if bucketNo is out of range
func (C *ChainHashMap[V]) BucketRecords(bucketNo int64) (chainRecords *ChainRecords[V], err error) {
	if bucketNo < 0 || bucketNo >= C.tableSize {
		err = fmt.Errorf("bucket number %d is outside permitted range [0, %d)", bucketNo, C.tableSize)
		return
	}

	chainRecords = &ChainRecords[V]{records: C.buckets.GetBucket(bucketNo)}

	return
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *ChainRecords[V]) HasNext() bool {
	return O.records.HasNext()
}

// Next - Returns entry.
// It returns:
//   - entry is the next record in the chain.
//   - err is of type NoRecordFound if there are no more records when calling this function.
func (O *ChainRecords[V]) Next() (entry Entry[V], err error) {
	if !O.records.HasNext() {
		err = NoRecordFound{}
		return
	}

	record, err := O.records.Next()
	if err != nil {
		err = fmt.Errorf("error while walking bucket chain: %s", err)
		return
	}

	entry = Entry[V]{Key: record.Key, Value: record.Value}

	return
}
