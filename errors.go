package iso8583

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSchema is reported when parsing is attempted without a usable
	// field schema. Nothing is consumed from the message in that case.
	ErrNoSchema = errors.New("schema not configured")

	// ErrBitmapNotHex is reported when a bitmap slice is not valid
	// hexadecimal. A malformed bitmap is a distinct failure from a short
	// buffer and never decodes to an empty field set silently.
	ErrBitmapNotHex = errors.New("bitmap is not valid hex")

	ErrInvalidFieldNumber = errors.New("field number out of range")
	ErrInvalidSchema      = errors.New("invalid field schema")
)

// MissingSchemaError reports an active field with no schema entry.
// Extraction stops at the offending field; earlier records are kept.
type MissingSchemaError struct {
	Field int
}

func (e *MissingSchemaError) Error() string {
	return fmt.Sprintf("no schema entry for field %d", e.Field)
}

// LengthIndicatorError reports a variable-length prefix that is not all
// decimal digits.
type LengthIndicatorError struct {
	Field     int
	Indicator string
}

func (e *LengthIndicatorError) Error() string {
	return fmt.Sprintf("invalid length indicator for field %d: expected digits, got %q", e.Field, e.Indicator)
}

// UnderflowError reports a message shorter than the bitmap and schema
// require at some consumption step. Need is the number of characters the
// step wanted, Have is how many remained.
type UnderflowError struct {
	Field int // 0 when the underflow happened before field extraction
	Need  int
	Have  int
}

func (e *UnderflowError) Error() string {
	if e.Field > 0 {
		return fmt.Sprintf("message too short for field %d: need %d chars, have %d", e.Field, e.Need, e.Have)
	}
	return fmt.Sprintf("message too short: need %d chars, have %d", e.Need, e.Have)
}

// TrailingDataError reports unconsumed characters left after every active
// field was extracted: the message is longer than the bitmap declared.
// All extracted records remain valid.
type TrailingDataError struct {
	Remainder string
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("unparsed data after last field: %q", e.Remainder)
}
