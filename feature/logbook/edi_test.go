package logbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ediSample = `[REG1TEST;1]
TName=Test Contest
PCall=M0XYZ
[Remarks]
CALL;X;G4CTP;Nice contact
CALL;X;M0ABC;Strong signal
short;line
[QSORecords;2]
251101;1200;G4CTP;1;59;001;59;002;59 001;IO91AA;120;;;;
251101;1210;M0ABC;1;59;002;59;003;59 002;JO01BB;95;;;;
too;short;row
[END; checksum]
251101;1220;F5XYZ;1;59;003;59;004;59 003;JN18;400;;;;
`

func TestParseEDI(t *testing.T) {
	emit, records := collectRecords()
	err := parseEDI([]byte(ediSample), emit, noProgress)
	require.NoError(t, err)

	require.Len(t, *records, 2, "rows after [END; are ignored")

	first := (*records)[0]
	assert.Equal(t, "G4CTP", first.Callsign)
	assert.Equal(t, "IO91AA", first.Locator)
	assert.Equal(t, "59 001", first.Exchange)
	assert.Equal(t, "Nice contact", first.Comment)

	second := (*records)[1]
	assert.Equal(t, "M0ABC", second.Callsign)
	assert.Equal(t, "Strong signal", second.Comment)
}

func TestParseEDI_NoRemarksSection(t *testing.T) {
	sample := strings.Join([]string{
		"[QSORecords;1]",
		"251101;1200;G4CTP;1;59;001;59;002;59 001;IO91AA;120;;;;",
		"[END; checksum]",
	}, "\n")

	emit, records := collectRecords()
	err := parseEDI([]byte(sample), emit, noProgress)
	require.NoError(t, err)

	require.Len(t, *records, 1)
	assert.Equal(t, "", (*records)[0].Comment)
}

func TestParseEDI_ProgressPasses(t *testing.T) {
	var seen []float64
	emit, _ := collectRecords()
	err := parseEDI([]byte(ediSample), emit, func(p float64) { seen = append(seen, p) })
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	// First pass stays within 0-50, second within 50-100.
	assert.LessOrEqual(t, seen[0], 50.0)
	assert.Equal(t, 100.0, seen[len(seen)-1])
}
