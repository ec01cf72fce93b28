package iso8583

import "fmt"

// FieldKind distinguishes how a field's width is determined on the wire.
type FieldKind string

const (
	// KindFixed fields occupy a constant number of characters known from
	// the schema alone.
	KindFixed FieldKind = "FIXED"
	// KindVariable fields are preceded by a short numeric length
	// indicator giving the value width.
	KindVariable FieldKind = "VARIABLE"
)

// FieldSchema describes a single data element. Exactly one of FixedLength
// (KindFixed) or LengthDigits (KindVariable) must be positive.
type FieldSchema struct {
	Kind         FieldKind
	FixedLength  int
	LengthDigits int
	Description  string
}

// Validate checks the fixed/variable length invariant for one entry.
func (fs FieldSchema) Validate() error {
	switch fs.Kind {
	case KindFixed:
		if fs.FixedLength <= 0 {
			return fmt.Errorf("%w: fixed field needs a positive length", ErrInvalidSchema)
		}
		if fs.LengthDigits != 0 {
			return fmt.Errorf("%w: fixed field must not set length digits", ErrInvalidSchema)
		}
	case KindVariable:
		if fs.LengthDigits <= 0 {
			return fmt.Errorf("%w: variable field needs a positive length digit count", ErrInvalidSchema)
		}
		if fs.FixedLength != 0 {
			return fmt.Errorf("%w: variable field must not set a fixed length", ErrInvalidSchema)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSchema, fs.Kind)
	}
	return nil
}

// Schema maps field numbers 1-128 to their definitions. It is read-only
// shared state: once handed to a Parser it must not be mutated, which makes
// concurrent Parse calls safe without locking.
type Schema map[int]FieldSchema

// Validate checks every entry and its field number range.
func (s Schema) Validate() error {
	for num, fs := range s {
		if num < 1 || num > MaxFieldNumber {
			return fmt.Errorf("%w: %d", ErrInvalidFieldNumber, num)
		}
		if err := fs.Validate(); err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
	}
	return nil
}

// Field returns the schema entry for a field number, reporting presence.
func (s Schema) Field(num int) (FieldSchema, bool) {
	fs, ok := s[num]
	return fs, ok
}
