package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Insert - Adds a record at the head of the bucket the key hashes to. It never overwrites, inserting a key that is
// already present adds a second independent record.
//   - key is the identifier of the record, it is not checked against the universe
//   - value is the value to store along with the key
func (C *ChainHashMap[V]) Insert(key int64, value V) {
	C.buckets.Prepend(C.GetBucketNo(key), key, value)
}

// Search - Gets the value for a key.
// In Strict mode the bucket chain is walked and the value of the newest record with a matching key is returned.
// In HeadOnly mode the value of the newest record in the bucket is returned whatever its key is.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value found, the zero value of V if nothing was found
//   - err is of type NoRecordFound if nothing was found, the only error Search returns
func (C *ChainHashMap[V]) Search(key int64) (value V, err error) {
	bucketNo := C.GetBucketNo(key)

	var record *model.Record[V]
	if C.mode == HeadOnly {
		record, err = C.buckets.Head(bucketNo)
	} else {
		record, err = C.buckets.Find(bucketNo, key)
	}
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Delete - Removes one record from the bucket the key hashes to.
// In Strict mode the newest record with a matching key is unlinked, the rest of the chain keeps its order.
// In HeadOnly mode the newest record in the bucket is removed whatever its key is.
//   - key is the identifier of a record
//
// It returns:
//   - deleted is true if a record was removed, false if there was nothing to remove
func (C *ChainHashMap[V]) Delete(key int64) (deleted bool) {
	bucketNo := C.GetBucketNo(key)

	var err error
	if C.mode == HeadOnly {
		err = C.buckets.PopHead(bucketNo)
	} else {
		err = C.buckets.Unlink(bucketNo, key)
	}

	return err == nil
}

// GetBucketNo - Returns which bucket number that the given key results in.
// A hash algorithm answering outside [0, table size) breaks its contract and makes this function panic.
//   - key is the identifier of a record
func (C *ChainHashMap[V]) GetBucketNo(key int64) (bucketNo int64) {
	bucketNo = C.hashAlgorithm.Evaluate(key)
	if bucketNo < 0 || bucketNo >= C.tableSize {
		panic(fmt.Sprintf("hash algorithm returned bucket %d for key %d, outside permitted range [0, %d)",
			bucketNo, key, C.tableSize))
	}

	return
}
