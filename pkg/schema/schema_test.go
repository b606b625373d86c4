package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/schema"
)

const fieldsYAML = `
fields:
  - id: fld1
    name: Title
    type: Text
  - name: Price
    type: Currency
    property:
      precision: 2
      symbol: "$"
  - name: Status
    type: SingleSelect
    property:
      options:
        - id: opt1
          name: Open
        - id: opt2
          name: Closed
`

func TestParseFields(t *testing.T) {
	t.Run("decodes descriptors", func(t *testing.T) {
		fields, err := schema.ParseFields(strings.NewReader(fieldsYAML))
		require.NoError(t, err)
		require.Len(t, fields, 3)

		assert.Equal(t, field.Descriptor{ID: "fld1", Name: "Title", Type: field.TypeText}, fields[0])
		assert.Equal(t, field.TypeCurrency, fields[1].Type)
		assert.Equal(t, 2, fields[1].Property.Precision)
		assert.Equal(t, "$", fields[1].Property.Symbol)
		assert.Equal(t, []field.SelectOption{{ID: "opt1", Name: "Open"}, {ID: "opt2", Name: "Closed"}}, fields[2].Property.Options)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := schema.ParseFields(strings.NewReader("fields: []\n"))
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})

	t.Run("rejects missing type", func(t *testing.T) {
		_, err := schema.ParseFields(strings.NewReader("fields:\n  - name: Title\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseFields)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		doc := "fields:\n  - {name: A, type: Text}\n  - {name: A, type: Number}\n"
		_, err := schema.ParseFields(strings.NewReader(doc))
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := schema.ParseFields(strings.NewReader("fields: [\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseFields)
	})
}

func TestParseRecords(t *testing.T) {
	t.Run("keeps value shapes", func(t *testing.T) {
		input := `{"records":[{"fields":{"Title":"Launch","Price":19.99,"Done":true,"Tags":["a"],"Note":null}}]}`
		records, err := schema.ParseRecords(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)

		got := records[0].Fields
		assert.Equal(t, "Launch", got["Title"])
		assert.Equal(t, 19.99, got["Price"])
		assert.Equal(t, true, got["Done"])
		assert.Equal(t, []any{"a"}, got["Tags"])
		v, ok := got["Note"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := schema.ParseRecords(strings.NewReader(`{"records":`))
		assert.ErrorIs(t, err, schema.ErrFailedToParseRecords)
	})
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	fieldsPath := filepath.Join(dir, "fields.yaml")
	recordsPath := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(fieldsPath, []byte(fieldsYAML), 0o600))
	require.NoError(t, os.WriteFile(recordsPath, []byte(`{"records":[{"fields":{"Title":"x"}}]}`), 0o600))

	fields, err := schema.LoadFields(fieldsPath)
	require.NoError(t, err)
	assert.Len(t, fields, 3)

	records, err := schema.LoadRecords(recordsPath)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = schema.LoadFields(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, schema.ErrFailedToOpenFile)
}
