package chainhashmap

import "github.com/gostonefire/chainhashmap/crt"

// NoRecordFound - Custom error to inform that no record was found, it is what Search returns for an absent key
type NoRecordFound = crt.NoRecordFound

// InvalidTableSize - Custom error to inform that a hash map can not be created with the requested number of buckets
type InvalidTableSize = crt.InvalidTableSize
