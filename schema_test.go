package iso8583

import (
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestLoadSchemaJSON(t *testing.T) {
	data := []byte(`{
		"3":  {"type": "FIXED", "length": 6, "description": "Processing Code"},
		"48": {"type": "VARIABLE", "length_digits": 3, "description": "Additional Data - Private"}
	}`)

	schema, err := LoadSchemaJSON(data)
	assert.NoError(t, err)
	assert.Len(t, schema, 2)

	fs, ok := schema.Field(3)
	assert.True(t, ok)
	assert.Equal(t, KindFixed, fs.Kind)
	assert.Equal(t, 6, fs.FixedLength)
	assert.Equal(t, "Processing Code", fs.Description)

	fs, ok = schema.Field(48)
	assert.True(t, ok)
	assert.Equal(t, KindVariable, fs.Kind)
	assert.Equal(t, 3, fs.LengthDigits)
}

func TestLoadSchemaJSONDefaultsToFixed(t *testing.T) {
	// The original configuration format allowed omitting the type.
	schema, err := LoadSchemaJSON([]byte(`{"7": {"length": 10, "description": "Transmission Date & Time"}}`))
	assert.NoError(t, err)
	assert.Equal(t, KindFixed, schema[7].Kind)
	assert.Equal(t, 10, schema[7].FixedLength)
}

func TestLoadSchemaYAML(t *testing.T) {
	data := []byte(`
"11":
  type: FIXED
  length: 6
  description: System Trace Audit Number (STAN)
"44":
  type: VARIABLE
  length_digits: 2
  description: Additional Response Data
`)
	schema, err := LoadSchemaYAML(data)
	assert.NoError(t, err)
	assert.Equal(t, 6, schema[11].FixedLength)
	assert.Equal(t, 2, schema[44].LengthDigits)
}

func TestLoadSchemaTOML(t *testing.T) {
	data := []byte(`
["41"]
type = "FIXED"
length = 8
description = "Card Acceptor Terminal Identification"

["48"]
type = "VARIABLE"
length_digits = 3
description = "Additional Data - Private"
`)
	schema, err := LoadSchemaTOML(data)
	assert.NoError(t, err)
	assert.Equal(t, 8, schema[41].FixedLength)
	assert.Equal(t, 3, schema[48].LengthDigits)
}

func TestLoadSchemaFile(t *testing.T) {
	schema, err := LoadSchemaFile(filepath.Join("testdata", "schema.json"))
	assert.NoError(t, err)
	assert.NotEmpty(t, schema)
	assert.NoError(t, schema.Validate())
}

func TestLoadSchemaFileUnknownExtension(t *testing.T) {
	_, err := LoadSchemaFile("schema.ini")
	assert.Error(t, err)
}

func TestLoadSchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"field number not numeric", `{"abc": {"type": "FIXED", "length": 6, "description": "x"}}`},
		{"field number out of range", `{"129": {"type": "FIXED", "length": 6, "description": "x"}}`},
		{"field number zero", `{"0": {"type": "FIXED", "length": 6, "description": "x"}}`},
		{"unknown kind", `{"3": {"type": "TLV", "length": 6, "description": "x"}}`},
		{"fixed without length", `{"3": {"type": "FIXED", "description": "x"}}`},
		{"variable without digits", `{"3": {"type": "VARIABLE", "description": "x"}}`},
		{"variable with fixed length", `{"3": {"type": "VARIABLE", "length": 6, "length_digits": 2, "description": "x"}}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSchemaJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDefaultSchemaIsValid(t *testing.T) {
	schema := DefaultSchema()
	assert.NoError(t, schema.Validate())

	// Every field a two-tier bitmap can declare is covered, except the
	// secondary bitmap indicator itself.
	_, ok := schema.Field(1)
	assert.False(t, ok)
	for num := 2; num <= MaxFieldNumber; num++ {
		_, ok := schema.Field(num)
		assert.True(t, ok, "field %d missing from default schema", num)
	}
}
