package logbook

import (
	"strconv"
	"strings"
)

const (
	adifHeaderEnd = "<EOH>"
	adifRecordEnd = "<EOR>"

	// adifExchangeTag is the ADIF tag read into the exchange slot. This is a
	// fixed contract: QTH, with GRIDSQUARE as the locator source.
	adifExchangeTag = "QTH"
	adifLocatorTag  = "GRIDSQUARE"
)

// parseADIF reads a tag-delimited ADIF dump. Only content after an <EOH>
// end-of-header marker (if present) is scanned; records are delimited by
// <EOR>. Records without a callsign are discarded. Progress is proportional
// to the consumed byte offset within the post-header content.
func parseADIF(data []byte, emit func(Record), progress ProgressFunc) error {
	content := string(data)

	if idx := strings.Index(content, adifHeaderEnd); idx >= 0 {
		content = content[idx+len(adifHeaderEnd):]
	}

	totalLength := len(content)
	processedLength := 0

	rest := content
	for strings.TrimSpace(rest) != "" {
		eor := strings.Index(rest, adifRecordEnd)
		if eor < 0 {
			break
		}

		body := strings.TrimSpace(rest[:eor])
		rest = rest[eor+len(adifRecordEnd):]

		processedLength += eor + len(adifRecordEnd)
		if totalLength > 0 {
			progress(float64(processedLength) / float64(totalLength) * 100)
		}

		rec := Record{
			Callsign: extractADIFField(body, "CALL"),
			Locator:  extractADIFField(body, adifLocatorTag),
			Exchange: extractADIFField(body, adifExchangeTag),
			Comment:  extractADIFField(body, "COMMENT"),
		}
		if rec.Callsign != "" {
			emit(rec)
		}
	}

	progress(100)
	return nil
}

// extractADIFField pulls one length-prefixed tag value (<NAME:LEN[:TYPE]>)
// out of a record body. Tag names match case-insensitively. Extraction fails
// soft: a missing tag, missing '>', or non-numeric length yields "".
func extractADIFField(body, name string) string {
	upper := strings.ToUpper(body)
	if len(upper) != len(body) {
		// Byte offsets into body must match the uppercased copy.
		upper = body
	}

	start := strings.Index(upper, "<"+strings.ToUpper(name)+":")
	if start < 0 {
		return ""
	}

	end := strings.Index(body[start:], ">")
	if end < 0 {
		return ""
	}
	end += start

	// Tag is "<NAME:LEN" or "<NAME:LEN:TYPE"
	parts := strings.Split(body[start:end], ":")
	if len(parts) < 2 {
		return ""
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 0 {
		return ""
	}

	valueStart := end + 1
	if valueStart > len(body) {
		return ""
	}
	valueEnd := valueStart + length
	if valueEnd > len(body) {
		valueEnd = len(body)
	}
	return strings.TrimSpace(body[valueStart:valueEnd])
}
