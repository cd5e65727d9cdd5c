package separatechaining

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Buckets - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It holds a fixed number of directly addressable buckets, each being the head of a single linked list of records
// ordered newest first.
type Buckets[V any] struct {
	heads           []*model.Record[V]
	numberOfBuckets int64
}

// NewBuckets - Returns a pointer to a new instance of the separate chaining bucket array.
//   - numberOfBuckets is the fixed number of buckets, it must be at least 1
//
// It returns:
//   - buckets which is a pointer to the created instance
//   - err which is of type crt.InvalidTableSize if numberOfBuckets is less than 1
func NewBuckets[V any](numberOfBuckets int64) (buckets *Buckets[V], err error) {
	if numberOfBuckets < 1 {
		err = crt.InvalidTableSize{}
		return
	}

	buckets = &Buckets[V]{
		heads:           make([]*model.Record[V], numberOfBuckets),
		numberOfBuckets: numberOfBuckets,
	}

	return
}

// GetNumberOfBuckets - Returns the fixed number of buckets
func (B *Buckets[V]) GetNumberOfBuckets() int64 {
	return B.numberOfBuckets
}

// GetBucket - Returns an iterator over the records of a bucket, head first
//   - bucketNo is the identifier of a bucket, between 0 and number of buckets - 1
func (B *Buckets[V]) GetBucket(bucketNo int64) *chain.Records[V] {
	return chain.NewRecords(B.heads[bucketNo])
}

// Prepend - Adds a new record at the head of a bucket chain, regardless of whether the key already exists.
func (B *Buckets[V]) Prepend(bucketNo, key int64, value V) {
	B.heads[bucketNo] = &model.Record[V]{Key: key, Value: value, Next: B.heads[bucketNo]}
}

// Head - Returns the head record of a bucket without looking at its key.
// It returns an error of type crt.NoRecordFound if the bucket is empty.
func (B *Buckets[V]) Head(bucketNo int64) (record *model.Record[V], err error) {
	record = B.heads[bucketNo]
	if record == nil {
		err = crt.NoRecordFound{}
	}

	return
}

// Find - Walks a bucket chain from the head and returns the first record with a matching key.
// It returns an error of type crt.NoRecordFound if no record in the chain has the key.
func (B *Buckets[V]) Find(bucketNo, key int64) (record *model.Record[V], err error) {
	iter := B.GetBucket(bucketNo)
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			err = fmt.Errorf("error while walking bucket %d: %s", bucketNo, err)
			return
		}
		if record.Key == key {
			return
		}
	}

	record = nil
	err = crt.NoRecordFound{}

	return
}

// Unlink - Removes the first record with a matching key from a bucket chain, keeping the order of the rest.
// It returns an error of type crt.NoRecordFound, and leaves the chain untouched, if no record has the key.
func (B *Buckets[V]) Unlink(bucketNo, key int64) (err error) {
	var prev *model.Record[V]
	for record := B.heads[bucketNo]; record != nil; record = record.Next {
		if record.Key == key {
			if prev == nil {
				B.heads[bucketNo] = record.Next
			} else {
				prev.Next = record.Next
			}
			record.Next = nil
			return
		}
		prev = record
	}

	err = crt.NoRecordFound{}

	return
}

// PopHead - Removes the head record of a bucket chain without looking at its key.
// It returns an error of type crt.NoRecordFound if the bucket is empty.
func (B *Buckets[V]) PopHead(bucketNo int64) (err error) {
	head := B.heads[bucketNo]
	if head == nil {
		err = crt.NoRecordFound{}
		return
	}

	B.heads[bucketNo] = head.Next
	head.Next = nil

	return
}

// Len - Returns the number of records currently in a bucket chain
func (B *Buckets[V]) Len(bucketNo int64) (n int64) {
	for record := B.heads[bucketNo]; record != nil; record = record.Next {
		n++
	}

	return
}
