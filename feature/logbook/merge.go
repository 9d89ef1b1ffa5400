package logbook

import "fmt"

// MergeMode selects how an incoming record is reconciled against the store.
// It is a closed enumeration: new policies are compile-time-checked additions.
type MergeMode int

const (
	// MergeKeepAll appends the incoming record unless a value-equal record
	// already exists.
	MergeKeepAll MergeMode = iota
	// MergeKeepRecent removes the first record with the same callsign and
	// appends the incoming one (last write wins per callsign).
	MergeKeepRecent
	// MergeSmart combines the incoming record with the first record sharing
	// its callsign: non-blank incoming fields win, the existing callsign
	// casing is kept, and the merged record stays in place.
	MergeSmart
)

// String returns the human-readable name of the mode, matching the labels
// shown to operators.
func (m MergeMode) String() string {
	switch m {
	case MergeKeepAll:
		return "Keep all records"
	case MergeKeepRecent:
		return "Keep most recent"
	case MergeSmart:
		return "Smart merge"
	default:
		return fmt.Sprintf("MergeMode(%d)", int(m))
	}
}

// Key returns the stable identifier used in config, CLI flags, and the API.
func (m MergeMode) Key() string {
	switch m {
	case MergeKeepAll:
		return "keep-all"
	case MergeKeepRecent:
		return "keep-recent"
	case MergeSmart:
		return "smart-merge"
	default:
		return fmt.Sprintf("merge-mode-%d", int(m))
	}
}

// ParseMergeMode maps a stable identifier back to a MergeMode.
func ParseMergeMode(key string) (MergeMode, error) {
	switch key {
	case "keep-all":
		return MergeKeepAll, nil
	case "keep-recent":
		return MergeKeepRecent, nil
	case "smart-merge":
		return MergeSmart, nil
	default:
		return MergeKeepAll, fmt.Errorf("unknown merge mode: %q", key)
	}
}

// merge produces the Smart-Merge result of incoming applied over existing.
// The existing callsign keeps its original casing; each remaining field takes
// the incoming value iff it is non-blank after trimming.
func merge(existing, incoming Record) Record {
	return Record{
		Callsign: existing.Callsign,
		Locator:  pickField(existing.Locator, incoming.Locator),
		Exchange: pickField(existing.Exchange, incoming.Exchange),
		Comment:  pickField(existing.Comment, incoming.Comment),
	}
}

func pickField(existing, incoming string) string {
	if isBlank(incoming) {
		return existing
	}
	return incoming
}
