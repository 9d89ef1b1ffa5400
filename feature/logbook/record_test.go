package logbook_test

import (
	"testing"

	"logbook-manager/feature/logbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Padding(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   logbook.Record
	}{
		{
			name:   "CallsignOnly",
			fields: []string{"G4CTP"},
			want:   logbook.Record{Callsign: "G4CTP"},
		},
		{
			name:   "TwoFields",
			fields: []string{"G4CTP", "IO91"},
			want:   logbook.Record{Callsign: "G4CTP", Locator: "IO91"},
		},
		{
			name:   "ThreeFields",
			fields: []string{"G4CTP", "IO91", "001"},
			want:   logbook.Record{Callsign: "G4CTP", Locator: "IO91", Exchange: "001"},
		},
		{
			name:   "FourFields",
			fields: []string{"G4CTP", "IO91", "001", "Nice contact"},
			want:   logbook.Record{Callsign: "G4CTP", Locator: "IO91", Exchange: "001", Comment: "Nice contact"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := logbook.NewRecord(tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec)

			// Decomposing round-trips the original values, with missing
			// fields as empty strings.
			fields := rec.Fields()
			assert.Len(t, fields, 4)
			for i, f := range tt.fields {
				assert.Equal(t, f, fields[i])
			}
			for i := len(tt.fields); i < 4; i++ {
				assert.Equal(t, "", fields[i])
			}
		})
	}
}

func TestNewRecord_Empty(t *testing.T) {
	_, err := logbook.NewRecord(nil)
	require.Error(t, err)

	var verr *logbook.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRecord_Equal(t *testing.T) {
	base := logbook.Record{Callsign: "G4CTP", Locator: "IO91", Exchange: "001", Comment: "hi"}

	tests := []struct {
		name  string
		other logbook.Record
		want  bool
	}{
		{"Reflexive", base, true},
		{"CallsignCaseInsensitive", logbook.Record{Callsign: "g4ctp", Locator: "IO91", Exchange: "001", Comment: "hi"}, true},
		{"WhitespaceInsensitiveFields", logbook.Record{Callsign: "G4CTP", Locator: " IO91 ", Exchange: "001\t", Comment: " hi"}, true},
		{"LocatorCaseSensitive", logbook.Record{Callsign: "G4CTP", Locator: "io91", Exchange: "001", Comment: "hi"}, false},
		{"DifferentComment", logbook.Record{Callsign: "G4CTP", Locator: "IO91", Exchange: "001", Comment: "bye"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			// Symmetric
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}
}

func TestRecord_SameContact(t *testing.T) {
	a := logbook.Record{Callsign: "G4CTP", Locator: "IO91"}
	b := logbook.Record{Callsign: "g4CTP", Exchange: "059"}
	c := logbook.Record{Callsign: "M0ABC"}

	assert.True(t, a.SameContact(b))
	assert.False(t, a.SameContact(c))
}

func TestRecord_HasDataBeyondCallsign(t *testing.T) {
	assert.False(t, logbook.Record{Callsign: "G4CTP"}.HasDataBeyondCallsign())
	assert.False(t, logbook.Record{Callsign: "G4CTP", Locator: "  "}.HasDataBeyondCallsign())
	assert.True(t, logbook.Record{Callsign: "G4CTP", Locator: "IO91"}.HasDataBeyondCallsign())
	assert.True(t, logbook.Record{Callsign: "G4CTP", Comment: "x"}.HasDataBeyondCallsign())
}
