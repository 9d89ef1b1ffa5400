package logbook

import "strings"

// Record is a single logged contact (QSO).
//
// All four fields are free text; no structural validation is applied. The
// callsign is the merge key: an empty callsign means "not a record" and is
// never stored.
type Record struct {
	Callsign string `json:"callsign"`
	Locator  string `json:"locator"`
	Exchange string `json:"exchange"`
	Comment  string `json:"comment"`
}

// NewRecord builds a Record from an ordered field list
// (callsign, locator, exchange, comment), padding missing trailing fields
// with empty strings. An empty list yields a ValidationError.
func NewRecord(fields []string) (Record, error) {
	if len(fields) == 0 {
		return Record{}, &ValidationError{Reason: "cannot create record from empty field list"}
	}

	padded := make([]string, 4)
	for i := 0; i < len(fields) && i < 4; i++ {
		padded[i] = fields[i]
	}

	return Record{
		Callsign: padded[0],
		Locator:  padded[1],
		Exchange: padded[2],
		Comment:  padded[3],
	}, nil
}

// Fields returns the record as an ordered 4-element list for serialization.
func (r Record) Fields() []string {
	return []string{r.Callsign, r.Locator, r.Exchange, r.Comment}
}

// HasDataBeyondCallsign reports whether the record carries any information
// besides the callsign. Used by the callsign-only filter.
func (r Record) HasDataBeyondCallsign() bool {
	return strings.TrimSpace(r.Locator) != "" ||
		strings.TrimSpace(r.Exchange) != "" ||
		strings.TrimSpace(r.Comment) != ""
}

// Equal reports value equality: callsigns compare case-insensitively, the
// other three fields compare after trimming surrounding whitespace
// (case-sensitive). Used for exact-duplicate suppression only.
func (r Record) Equal(other Record) bool {
	return strings.EqualFold(r.Callsign, other.Callsign) &&
		strings.TrimSpace(r.Locator) == strings.TrimSpace(other.Locator) &&
		strings.TrimSpace(r.Exchange) == strings.TrimSpace(other.Exchange) &&
		strings.TrimSpace(r.Comment) == strings.TrimSpace(other.Comment)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SameContact reports merge-matching identity: two records refer to the same
// contact iff their callsigns compare equal case-insensitively, independent
// of the other fields.
func (r Record) SameContact(other Record) bool {
	return strings.EqualFold(r.Callsign, other.Callsign)
}
