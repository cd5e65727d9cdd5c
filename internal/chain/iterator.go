package chain

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Records - Is used to iterate over the records of one bucket chain, head to tail.
type Records[V any] struct {
	current *model.Record[V]
}

// NewRecords - Returns a pointer to a new Records struct starting at head
func NewRecords[V any](head *model.Record[V]) *Records[V] {

	return &Records[V]{
		current: head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records[V]) HasNext() bool {
	return R.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is a standard error if there are no more records when calling this function.
func (R *Records[V]) Next() (record *model.Record[V], err error) {
	if R.current == nil {
		err = fmt.Errorf("no more records in chain")
		return
	}

	record = R.current
	R.current = record.Next

	return
}
