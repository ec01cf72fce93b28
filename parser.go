// Package iso8583 decodes flat text ISO 8583-style messages into ordered,
// typed field records. The message layout is a fixed identifier and
// proprietary header, a 4-character MTI, one or two hex-encoded 64-bit
// bitmaps declaring which fields are present, and then the field data
// itself, walked in ascending field-number order against an externally
// supplied schema.
package iso8583

import (
	"fmt"
	"log/slog"
)

// Fixed prefix widths ahead of the primary bitmap. The caller hands Parse
// the complete raw message; these offsets are assumed, not validated, so a
// truncated prefix surfaces through the ordinary underflow path.
const (
	IdentifierLen     = 3
	ProprietaryHdrLen = 9
	MTILen            = 4
)

// Parser decodes messages against one immutable schema. It holds no other
// state: Parse is reentrant and any number of calls may run concurrently.
type Parser struct {
	schema Schema
}

// NewParser builds a Parser over the given schema. The schema is validated
// once here and must not be mutated afterwards.
func NewParser(schema Schema) (*Parser, error) {
	if len(schema) == 0 {
		return nil, ErrNoSchema
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &Parser{schema: schema}, nil
}

// Result is everything one Parse call produced. At most one error is ever
// recorded; the first failure halts field extraction, and records built
// before that point are preserved. A TrailingDataError is the only error
// that coexists with a complete field list.
type Result struct {
	Identifier      string
	ProprietaryHdr  string
	MTI             string
	PrimaryBitmap   string
	SecondaryBitmap string
	ActiveFields    []int
	Fields          []FieldRecord
	Err             error
}

// Field returns the record for a field number, if it was extracted.
func (r *Result) Field(num int) (FieldRecord, bool) {
	for _, rec := range r.Fields {
		if rec.Field == num {
			return rec, true
		}
	}
	return FieldRecord{}, false
}

// LogValue implements slog.LogValuer so a Result can be logged structurally
// without dumping every field by hand.
func (r *Result) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("mti", r.MTI))
	attrs = append(attrs, slog.Any("active_fields", r.ActiveFields))

	fieldArgs := make([]any, 0, len(r.Fields))
	for _, rec := range r.Fields {
		fieldArgs = append(fieldArgs, slog.String(fmt.Sprintf("%d", rec.Field), rec.Value))
	}
	attrs = append(attrs, slog.Group("fields", fieldArgs...))

	if r.Err != nil {
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Parse decodes one complete raw message. It never fails outright: every
// error is attached to the in-progress Result and returned with whatever
// was decoded before the failure.
func (p *Parser) Parse(msg string) *Result {
	res := &Result{}

	// A zero-value Parser has nothing to decode against. NewParser
	// rejects this up front, but the failure still belongs on the Result.
	if len(p.schema) == 0 {
		res.Err = ErrNoSchema
		return res
	}

	pos := 0
	var uerr *UnderflowError

	if res.Identifier, pos, uerr = consume(msg, pos, IdentifierLen); uerr != nil {
		res.Err = uerr
		return res
	}
	if res.ProprietaryHdr, pos, uerr = consume(msg, pos, ProprietaryHdrLen); uerr != nil {
		res.Err = uerr
		return res
	}
	if res.MTI, pos, uerr = consume(msg, pos, MTILen); uerr != nil {
		res.Err = uerr
		return res
	}

	if res.PrimaryBitmap, pos, uerr = consume(msg, pos, BitmapHexLen); uerr != nil {
		res.Err = uerr
		return res
	}
	primary, err := DecodeBitmap(res.PrimaryBitmap)
	if err != nil {
		res.Err = fmt.Errorf("primary bitmap: %w", err)
		return res
	}

	var secondary []int
	if hasSecondary(primary) {
		if res.SecondaryBitmap, pos, uerr = consume(msg, pos, BitmapHexLen); uerr != nil {
			res.Err = uerr
			return res
		}
		secondary, err = DecodeBitmap(res.SecondaryBitmap)
		if err != nil {
			res.Err = fmt.Errorf("secondary bitmap: %w", err)
			return res
		}
	}
	res.ActiveFields = CombineBitmaps(primary, secondary)

	res.Fields, pos, err = extractFields(msg, pos, res.ActiveFields, p.schema)
	if err != nil {
		res.Err = err
		return res
	}

	// The bitmap accounted for less than the caller sent. Everything
	// already extracted stays valid, but the caller must see the mismatch.
	if pos < len(msg) {
		res.Err = &TrailingDataError{Remainder: msg[pos:]}
	}

	return res
}

// consume slices n characters off msg at pos, advancing the cursor.
func consume(msg string, pos, n int) (string, int, *UnderflowError) {
	if pos+n > len(msg) {
		return "", pos, &UnderflowError{Need: n, Have: len(msg) - pos}
	}
	return msg[pos : pos+n], pos + n, nil
}
