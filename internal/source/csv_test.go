package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVToleratesRaggedRows(t *testing.T) {
	in := "Name,Bill No,Amount\nV P Traders,INV-1,100\nShort,INV-2\n"
	data, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Bill No", "Amount"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Len(t, data.Rows[1], 2)
}

func TestReadKeyedCSV(t *testing.T) {
	in := "name,gstin\nV P Traders,09X\nPragati,\n"
	data, err := ReadKeyedCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "gstin"}, data.Keys)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "V P Traders", data.Rows[0]["name"])
	assert.Equal(t, "", data.Rows[1]["gstin"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}
