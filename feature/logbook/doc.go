// Package logbook is the ingestion-and-reconciliation engine for amateur
// radio contest QSO logs.
//
// Four heterogeneous input formats are parsed into a single Record type
// (callsign, locator, exchange, comment):
//
//   - CSL: the canonical flat CSV format, also the only export format.
//   - EDI: a line-oriented format with bracketed section markers.
//   - ADIF: a tag-delimited dump using length-prefixed <NAME:LEN> tags.
//   - Minos: an XMPP-style XML event stream of MinosLogQSO RPC calls.
//
// The Manager owns the authoritative record list and is its single mutation
// point. Each incoming record passes through AddOrMerge, which applies the
// active merge policy:
//
//   - Keep-All: append unless a value-equal record exists.
//   - Keep-Most-Recent: last write wins per callsign.
//   - Smart-Merge: non-blank incoming fields overwrite, in place.
//
// Records with a blank callsign are never stored; the optional callsign-only
// filter additionally drops records carrying no data beyond the callsign.
//
// # Progress and notification
//
// Loads report fractional progress through a synchronous ProgressFunc; the
// engine clamps delivered values to [0,100] and keeps them non-decreasing.
// Observers registered with Observe are invoked synchronously, in
// registration order, after every mutation and after a successful export.
// Callbacks run while the engine's mutex is held: re-entering a mutating
// Manager method from an observer deadlocks, so don't.
//
// # Errors
//
// Failures surface as typed errors (NotFoundError, UnsupportedFormatError,
// ValidationError, FormatError, ParseError, EmptyResultError, WriteError).
// Field-level extraction problems are recovered locally by skipping the
// offending line or tag; file-level structural problems abort the load,
// leaving whatever was merged before the failure point in place.
package logbook
