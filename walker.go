package iso8583

// FieldRecord is the decoded form of one data element: the exact
// substring consumed for the field, untransformed and unvalidated.
// Indicator holds the raw length prefix for variable fields (empty for
// fixed ones), so Indicator+Value is byte-for-byte what the field occupied
// on the wire.
type FieldRecord struct {
	Field       int
	Description string
	Length      int
	Indicator   string
	Value       string
}

// extractFields walks the message from pos, consuming one slice per active
// field in ascending field-number order (bit order is transmission order,
// so this is also ascending buffer position). It returns the records built
// so far, the final cursor, and the first error encountered. On error the
// cursor points at the failed consumption step and the partial records are
// still returned.
func extractFields(msg string, pos int, active []int, schema Schema) ([]FieldRecord, int, error) {
	records := make([]FieldRecord, 0, len(active))

	for _, fieldNum := range active {
		fs, ok := schema.Field(fieldNum)
		if !ok {
			return records, pos, &MissingSchemaError{Field: fieldNum}
		}

		var indicator string
		length := fs.FixedLength

		if fs.Kind == KindVariable {
			if pos+fs.LengthDigits > len(msg) {
				return records, pos, &UnderflowError{Field: fieldNum, Need: fs.LengthDigits, Have: len(msg) - pos}
			}
			indicator = msg[pos : pos+fs.LengthDigits]
			n, ok := parseDigits(indicator)
			if !ok {
				return records, pos, &LengthIndicatorError{Field: fieldNum, Indicator: indicator}
			}
			pos += fs.LengthDigits
			length = n
		}

		if pos+length > len(msg) {
			return records, pos, &UnderflowError{Field: fieldNum, Need: length, Have: len(msg) - pos}
		}
		value := msg[pos : pos+length]
		pos += length

		records = append(records, FieldRecord{
			Field:       fieldNum,
			Description: fs.Description,
			Length:      length,
			Indicator:   indicator,
			Value:       value,
		})
	}

	return records, pos, nil
}

// parseDigits converts an all-digit string to an int without allocating.
// It rejects anything outside '0'-'9', including signs and spaces.
func parseDigits(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i] - '0'
		if ch > 9 {
			return 0, false
		}
		n = n*10 + int(ch)
	}
	return n, true
}
