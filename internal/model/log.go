package model

// LogRecord represents one row of the dataset.
// Fields are positional; the meaning of each position is decided by the
// column mapping the caller uses, not by the record itself.
type LogRecord []Value

// Width returns the number of fields in the record.
func (r LogRecord) Width() int {
	return len(r)
}

// Field returns the field at index i and whether it exists.
func (r LogRecord) Field(i int) (Value, bool) {
	if i < 0 || i >= len(r) {
		return Value{}, false
	}
	return r[i], true
}

// Strings is a helper that builds a record made of string fields only.
func Strings(fields ...string) LogRecord {
	rec := make(LogRecord, len(fields))
	for i, f := range fields {
		rec[i] = String(f)
	}
	return rec
}
