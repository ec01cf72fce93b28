package iso8583

import (
	"encoding/hex"
	"fmt"
	"sort"
)

const (
	// BitmapHexLen is the width of one bitmap tier on the wire:
	// 8 bytes encoded as 16 hex characters.
	BitmapHexLen = 16

	// MaxFieldNumber is the highest field number two bitmap tiers can
	// declare.
	MaxFieldNumber = 128
)

// DecodeBitmap converts a 16-hex-character bitmap into the ascending list
// of field numbers it declares, in 1..64. Bit i (0-based, MSB first) set
// means field i+1 is present. Leading zero digits are significant, so the
// input must be exactly BitmapHexLen characters.
func DecodeBitmap(bitmapHex string) ([]int, error) {
	if len(bitmapHex) != BitmapHexLen {
		return nil, fmt.Errorf("%w: got %d chars, want %d", ErrBitmapNotHex, len(bitmapHex), BitmapHexLen)
	}

	var raw [8]byte
	if _, err := hex.Decode(raw[:], []byte(bitmapHex)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBitmapNotHex, bitmapHex)
	}

	fields := make([]int, 0, 64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if raw[i]&(0x80>>j) != 0 {
				fields = append(fields, i*8+j+1)
			}
		}
	}
	return fields, nil
}

// CombineBitmaps merges the primary field set with a decoded secondary
// bitmap. Each secondary bit index j maps to field j+65, and field 1 is
// dropped from the result: it only flags that the secondary tier exists
// and never carries data. The returned set is sorted ascending.
func CombineBitmaps(primary, secondary []int) []int {
	combined := make([]int, 0, len(primary)+len(secondary))
	for _, f := range primary {
		if f == 1 {
			continue
		}
		combined = append(combined, f)
	}
	for _, f := range secondary {
		combined = append(combined, f+64)
	}
	sort.Ints(combined)
	return combined
}

// hasSecondary reports whether field 1 is set in a decoded primary bitmap.
// Field sets are ascending, so it can only be the first entry.
func hasSecondary(primary []int) bool {
	return len(primary) > 0 && primary[0] == 1
}
