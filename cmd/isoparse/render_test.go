package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	assert "github.com/stretchr/testify/require"

	iso8583 "github.com/zileongggg/ISOMsgParser"
)

func TestRenderResult(t *testing.T) {
	color.NoColor = true

	parser, err := iso8583.NewParser(iso8583.DefaultSchema())
	assert.NoError(t, err)

	res := parser.Parse("ISO0250000700200" + "2000000000000000" + "123456")
	assert.NoError(t, res.Err)

	var buf strings.Builder
	renderResult(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "ISO Identifier:")
	assert.Contains(t, out, "025000070")
	assert.Contains(t, out, "MTI:")
	assert.Contains(t, out, "0200")
	assert.Contains(t, out, "2000000000000000")
	assert.Contains(t, out, "Processing Code")
	assert.Contains(t, out, "123456")
	assert.NotContains(t, out, "PARSING ERROR")
}

func TestRenderResultWithError(t *testing.T) {
	color.NoColor = true

	parser, err := iso8583.NewParser(iso8583.DefaultSchema())
	assert.NoError(t, err)

	res := parser.Parse("ISO0250000700200" + "2000000000000000" + "123456" + "junk")
	assert.Error(t, res.Err)

	var buf strings.Builder
	renderResult(&buf, res)
	assert.Contains(t, buf.String(), "PARSING ERROR")
	assert.Contains(t, buf.String(), "junk")
}
