package logbook

import "strings"

// parseEDI reads the line-oriented EDI contest log format in two passes over
// the same line buffer.
//
// Pass 1 collects free-text comments: between a [Remarks] marker and the
// [QSORecords; marker, each line with at least 4 ';'-separated fields maps
// field 2 (callsign) to field 3 (comment). Pass 2 collects contacts: between
// [QSORecords; and a line starting with [END;, each line with at least 10
// fields yields a record (callsign = field 2, exchange = field 8, locator =
// field 9, comment from the pass-1 lookup). Short or malformed lines are
// skipped silently.
//
// Progress maps pass 1 to 0-50% and pass 2 to 50-100%.
func parseEDI(data []byte, emit func(Record), progress ProgressFunc) error {
	lines := strings.Split(string(data), "\n")
	totalLines := len(lines)

	// First pass: collect comments
	comments := make(map[string]string)
	inRemarks := false
	processed := 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		processed++
		progress(float64(processed) / float64(totalLines*2) * 100)

		if strings.HasPrefix(line, "[Remarks]") {
			inRemarks = true
			continue
		}
		if strings.HasPrefix(line, "[QSORecords;") {
			inRemarks = false
			continue
		}

		if inRemarks && line != "" {
			fields := strings.Split(line, ";")
			if len(fields) >= 4 {
				comments[strings.TrimSpace(fields[2])] = strings.TrimSpace(fields[3])
			}
		}
	}

	// Second pass: process QSOs
	inQSOSection := false
	processed = 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		processed++
		progress(50 + float64(processed)/float64(totalLines*2)*100)

		if strings.HasPrefix(line, "[QSORecords;") {
			inQSOSection = true
			continue
		}
		if strings.HasPrefix(line, "[END;") {
			break
		}

		if inQSOSection && line != "" {
			fields := strings.Split(line, ";")
			if len(fields) >= 10 {
				callsign := strings.TrimSpace(fields[2])
				emit(Record{
					Callsign: callsign,
					Locator:  strings.TrimSpace(fields[9]),
					Exchange: strings.TrimSpace(fields[8]),
					Comment:  comments[callsign],
				})
			}
		}
	}

	progress(100)
	return nil
}
