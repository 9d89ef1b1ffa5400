package logbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRecords() (func(Record), *[]Record) {
	var out []Record
	return func(r Record) { out = append(out, r) }, &out
}

func noProgress(float64) {}

func TestParseCSL_HeaderSkipped(t *testing.T) {
	data := []byte(cslHeaderBanner + "\n" + cslHeaderLegend + "\n" +
		"G4CTP,IO91,001,Nice contact\n" +
		"M0ABC,JO01,002,\n")

	emit, records := collectRecords()
	err := parseCSL(data, emit, noProgress)
	require.NoError(t, err)

	require.Len(t, *records, 2)
	assert.Equal(t, Record{Callsign: "G4CTP", Locator: "IO91", Exchange: "001", Comment: "Nice contact"}, (*records)[0])
	assert.Equal(t, Record{Callsign: "M0ABC", Locator: "JO01", Exchange: "002"}, (*records)[1])
}

func TestParseCSL_FirstRowMayBeData(t *testing.T) {
	data := []byte("G4CTP,IO91\nM0ABC\n")

	emit, records := collectRecords()
	err := parseCSL(data, emit, noProgress)
	require.NoError(t, err)

	require.Len(t, *records, 2)
	assert.Equal(t, "G4CTP", (*records)[0].Callsign)
	assert.Equal(t, "IO91", (*records)[0].Locator)
	// Short rows are padded.
	assert.Equal(t, Record{Callsign: "M0ABC"}, (*records)[1])
}

func TestParseCSL_QuotedFields(t *testing.T) {
	data := []byte("G4CTP,IO91,001,\"worked twice, good signal\"\n")

	emit, records := collectRecords()
	err := parseCSL(data, emit, noProgress)
	require.NoError(t, err)

	require.Len(t, *records, 1)
	assert.Equal(t, "worked twice, good signal", (*records)[0].Comment)
}

func TestWriteCSL_RoundTrip(t *testing.T) {
	records := []Record{
		{Callsign: "G4CTP", Locator: "IO91", Exchange: "001", Comment: "with, comma"},
		{Callsign: "M0ABC"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSL(&buf, records))

	out := buf.String()
	assert.Contains(t, out, cslHeaderBanner)
	assert.Contains(t, out, cslHeaderLegend)

	emit, reloaded := collectRecords()
	require.NoError(t, parseCSL(buf.Bytes(), emit, noProgress))
	require.Len(t, *reloaded, len(records))
	for i := range records {
		assert.True(t, records[i].Equal((*reloaded)[i]))
	}
}

func TestWriteCSL_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSL(&buf, nil))

	emit, reloaded := collectRecords()
	require.NoError(t, parseCSL(buf.Bytes(), emit, noProgress))
	assert.Empty(t, *reloaded)
}
