package csvimport

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
)

func newTestReader() *Reader {
	return NewReader("Ipiranga", logger.NewLoggerWithOutput(io.Discard))
}

func TestRead(t *testing.T) {
	csv := `street,number,price,price_interval
"Rua Vicente da Costa",150,9999.99,both
"Rua Moreira e Costa",200,8500.50,above
"Rua Bom Pastor",300,11000.00,below
`

	records, err := newTestReader().Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Rua Vicente da Costa", first.Street)
	assert.Equal(t, 150, first.Number)
	assert.Equal(t, 9999.99, first.Price)
	assert.Equal(t, IntervalBoth, first.PriceInterval)
	assert.Equal(t, "Rua Vicente da Costa, 150, Ipiranga", first.FullAddress)
}

func TestRead_CommaDecimalSeparator(t *testing.T) {
	csv := `"Rua Tabor",40,"8500,50",above
`

	records, err := newTestReader().Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 8500.50, records[0].Price)
}

func TestRead_SkipsInvalidRows(t *testing.T) {
	csv := `street,number,price,price_interval
"Rua Tabor",40,9000.00,above
"",50,9000.00,above
"Rua Tabor",-1,9000.00,above
"Rua Tabor",60,-5,above
"Rua Tabor",70,9000.00,sideways
"Rua Tabor",80,9000.00,below
`

	records, err := newTestReader().Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 40, records[0].Number)
	assert.Equal(t, 80, records[1].Number)
}

func TestRead_NoValidRecords(t *testing.T) {
	csv := `street,number,price,price_interval
"Rua Tabor",oops,9000.00,above
`

	records, err := newTestReader().Read(strings.NewReader(csv))
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrNoValidRecords)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := newTestReader().ReadFile("/nonexistent/properties.csv")
	assert.Error(t, err)
}
