package logbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Version is the utility version written into the CSL header banner.
const Version = "1.0.0"

const (
	cslHeaderBanner = "# Contest Logbook Manager v" + Version
	cslHeaderLegend = "# <Callsign>, <Locator>, <Exchange>, <Comment>"
)

// parseCSL reads the canonical flat format. Rows whose first field starts
// with the comment marker '#' are discarded (the two-line header written by
// writeCSL, or any other comment row); every other non-empty row becomes one
// Record via the padding constructor. Progress is proportional to rows
// consumed out of the file's line count.
func parseCSL(data []byte, emit func(Record), progress ProgressFunc) error {
	totalLines := bytes.Count(data, []byte("\n")) + 1

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	processed := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		processed++
		progress(float64(processed) / float64(totalLines) * 100)
		if err != nil {
			// Malformed row, skip and keep going.
			continue
		}
		if len(row) == 0 {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(row[0]), "#") {
			continue
		}

		fields := make([]string, len(row))
		for i, f := range row {
			fields[i] = strings.TrimSpace(f)
		}
		rec, err := NewRecord(fields)
		if err != nil {
			continue
		}
		emit(rec)
	}
	progress(100)
	return nil
}

// writeCSL serializes records to the canonical flat format: a two-line '#'
// header (banner + column legend) followed by one CSV row per record in
// callsign, locator, exchange, comment order.
func writeCSL(w io.Writer, records []Record) error {
	if _, err := fmt.Fprintln(w, cslHeaderBanner); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, cslHeaderLegend); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	for _, r := range records {
		if err := writer.Write(r.Fields()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
