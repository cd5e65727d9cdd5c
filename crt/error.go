package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidTableSize - Custom error to inform that a table can not be built with the requested number of buckets
type InvalidTableSize struct {
	msg string
}

// Error - Used to notify that the table size is not usable
func (E InvalidTableSize) Error() string {
	if E.msg == "" {
		return "table size must be at least 1"
	}
	return E.msg
}
