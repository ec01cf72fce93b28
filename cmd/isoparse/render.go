package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	iso8583 "github.com/zileongggg/ISOMsgParser"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgWhite)
	valueColor   = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// renderResult prints a parsed message in a human-readable layout: header
// block, bitmap block, an aligned field table, and an error banner when the
// parse recorded one.
func renderResult(w io.Writer, res *iso8583.Result) {
	rule := strings.Repeat("-", 70)

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "--- ISO 8583 Parsed Message ---")

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "[Message Header]")
	renderKV(w, "ISO Identifier:", res.Identifier)
	renderKV(w, "Proprietary Header:", res.ProprietaryHdr)

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "[ISO Core Message]")
	renderKV(w, "MTI:", res.MTI)

	if res.PrimaryBitmap != "" {
		fmt.Fprintln(w)
		headingColor.Fprintln(w, "  [Bitmap Information]")
		renderKV(w, "  Primary (Hex):", res.PrimaryBitmap)
		if res.SecondaryBitmap != "" {
			renderKV(w, "  Secondary (Hex):", res.SecondaryBitmap)
		}
		renderKV(w, "  Active Fields:", fmt.Sprint(res.ActiveFields))
	}

	if len(res.Fields) > 0 {
		fmt.Fprintln(w)
		headingColor.Fprintln(w, "  [Data Fields]")
		fmt.Fprintf(w, "  %s\n", rule)
		fmt.Fprintf(w, "  %-5s %-42s %-5s %s\n", "Field", "Description", "Len", "Value")
		fmt.Fprintf(w, "  %s\n", rule)
		for _, rec := range res.Fields {
			fmt.Fprintf(w, "  %-5d %-42s %-5d %s\n", rec.Field, rec.Description, rec.Length, valueColor.Sprint(rec.Value))
		}
		fmt.Fprintf(w, "  %s\n", rule)
	}

	if res.Err != nil {
		fmt.Fprintln(w)
		errorColor.Fprintf(w, "PARSING ERROR: %v\n", res.Err)
	}

	fmt.Fprintln(w)
}

func renderKV(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "  %-21s", label)
	fmt.Fprintln(w, valueColor.Sprint(value))
}
