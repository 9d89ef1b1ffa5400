package logbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var supportedExtensions = map[string]bool{
	".csl":   true,
	".edi":   true,
	".adi":   true,
	".adif":  true,
	".minos": true,
}

// SupportedExtension reports whether ext (including the leading dot) is one
// of the recognized contest log formats. Matching is case-insensitive.
func SupportedExtension(ext string) bool {
	return supportedExtensions[strings.ToLower(ext)]
}

// MergeSummary aggregates the outcome of feeding a batch of records through
// the reconciliation engine.
type MergeSummary struct {
	// Scanned is the number of records the parser produced.
	Scanned int `json:"scanned"`
	// Added is the number of records appended as new entries.
	Added int `json:"added"`
	// Replaced is the number of records that displaced an existing entry
	// (Keep-Most-Recent).
	Replaced int `json:"replaced"`
	// Merged is the number of records combined into an existing entry in
	// place (Smart-Merge).
	Merged int `json:"merged"`
	// Duplicates is the number of value-equal records suppressed (Keep-All).
	Duplicates int `json:"duplicates"`
	// DroppedEmpty is the number of records discarded for a blank callsign.
	DroppedEmpty int `json:"dropped_empty"`
	// DroppedCallsignOnly is the number of records discarded by the
	// callsign-only filter.
	DroppedCallsignOnly int `json:"dropped_callsign_only"`
}

type mergeOutcome int

const (
	outcomeAdded mergeOutcome = iota
	outcomeReplaced
	outcomeMerged
	outcomeDuplicate
	outcomeDroppedEmpty
	outcomeDroppedCallsignOnly
)

func (s *MergeSummary) count(o mergeOutcome) {
	switch o {
	case outcomeAdded:
		s.Added++
	case outcomeReplaced:
		s.Replaced++
	case outcomeMerged:
		s.Merged++
	case outcomeDuplicate:
		s.Duplicates++
	case outcomeDroppedEmpty:
		s.DroppedEmpty++
	case outcomeDroppedCallsignOnly:
		s.DroppedCallsignOnly++
	}
}

// Manager owns the authoritative record list and is the single mutation
// point for it. All mutating calls are serialized by an internal mutex since
// merge decisions read-then-write the store. Observer callbacks run
// synchronously, in registration order, while that mutex is held: an
// observer must not call back into a mutating Manager method.
type Manager struct {
	mu               sync.Mutex
	records          []Record
	mode             MergeMode
	dropCallsignOnly bool
	observers        []func()
	dirty            bool
	logger           *zap.Logger
}

// NewManager creates an empty record store using Keep-All merging.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// SetMergeMode sets the active merge policy. Takes effect on the next
// mutation.
func (m *Manager) SetMergeMode(mode MergeMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.logger.Info("Merge mode set", zap.String("mode", mode.String()))
}

// MergeMode returns the active merge policy.
func (m *Manager) MergeMode() MergeMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// SetDropCallsignOnly toggles the callsign-only filter.
func (m *Manager) SetDropCallsignOnly(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropCallsignOnly = v
	m.logger.Info("Drop callsign-only records set", zap.Bool("enabled", v))
}

// DropCallsignOnly reports whether the callsign-only filter is enabled.
func (m *Manager) DropCallsignOnly() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropCallsignOnly
}

// Observe registers a callback invoked after every store mutation and after
// a successful export.
func (m *Manager) Observe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Records returns a copy of the stored records in insertion order.
func (m *Manager) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Count returns the number of stored records.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// HasUnsavedChanges reports whether the store has been mutated since the
// last successful export.
func (m *Manager) HasUnsavedChanges() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty
}

// AddOrMerge feeds one record through the reconciliation entry point.
func (m *Manager) AddOrMerge(rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addOrMerge(rec)
}

// MergeRecords feeds a batch of records through the engine under a single
// lock and returns the aggregated outcome. Observers are notified once per
// mutation plus once at the end.
func (m *Manager) MergeRecords(records []Record) *MergeSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := &MergeSummary{}
	for _, rec := range records {
		summary.Scanned++
		summary.count(m.addOrMerge(rec))
	}
	m.notifyLocked()
	return summary
}

// Reset clears the store unconditionally. The dirty flag is set only if
// records were present beforehand.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) > 0 {
		m.dirty = true
	}
	m.records = nil
	m.notifyLocked()
}

// Load ingests the contest log at path, determining the format purely from
// the file extension. Records accumulate across loads; a parse failure
// mid-file leaves whatever records were already merged in place.
func (m *Manager) Load(path string, progress ProgressFunc) (*MergeSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m.logger.Info("Starting load",
		zap.String("path", path),
		zap.Float64("size_kb", float64(info.Size())/1024),
		zap.String("merge_mode", m.MergeMode().String()),
	)

	return m.LoadBytes(filepath.Base(path), data, progress)
}

// LoadBytes ingests an in-memory contest log, determining the format from
// the name's extension. Used directly for logs fetched from object storage.
func (m *Manager) LoadBytes(name string, data []byte, progress ProgressFunc) (*MergeSummary, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !supportedExtensions[ext] {
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	summary := &MergeSummary{}
	emit := func(rec Record) {
		summary.Scanned++
		summary.count(m.addOrMerge(rec))
	}
	bounded := boundProgress(progress)

	var err error
	switch ext {
	case ".csl":
		err = parseCSL(data, emit, bounded)
	case ".edi":
		err = parseEDI(data, emit, bounded)
	case ".adi", ".adif":
		err = parseADIF(data, emit, bounded)
	case ".minos":
		err = parseMinos(data, emit, bounded)
	}
	if err != nil {
		return nil, err
	}

	m.notifyLocked()
	m.logger.Info("Finished loading",
		zap.String("name", name),
		zap.Int("scanned", summary.Scanned),
		zap.Int("added", summary.Added),
		zap.Int("records", len(m.records)),
	)
	return summary, nil
}

// Save writes the canonical CSL export to path. On success the dirty flag is
// cleared and observers are notified; on failure the in-memory store is left
// untouched and a WriteError is returned.
func (m *Manager) Save(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := writeCSL(f, m.records); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	m.markSavedLocked()
	m.logger.Info("Saved logbook", zap.String("path", path), zap.Int("records", len(m.records)))
	return nil
}

// Export writes the canonical CSL serialization to w without touching the
// dirty flag. Callers that complete a durable export (file save, storage
// publish) follow up with markSaved.
func (m *Manager) Export(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return writeCSL(w, m.records)
}

func (m *Manager) markSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markSavedLocked()
}

func (m *Manager) markSavedLocked() {
	m.dirty = false
	m.notifyLocked()
}

// addOrMerge applies the active merge policy to one incoming record.
// Caller must hold m.mu.
func (m *Manager) addOrMerge(rec Record) mergeOutcome {
	if isBlank(rec.Callsign) {
		return outcomeDroppedEmpty
	}
	if m.dropCallsignOnly && !rec.HasDataBeyondCallsign() {
		return outcomeDroppedCallsignOnly
	}

	switch m.mode {
	case MergeKeepRecent:
		if i := m.indexOfCallsign(rec); i >= 0 {
			m.records = append(m.records[:i], m.records[i+1:]...)
			m.records = append(m.records, rec)
			m.markDirtyLocked()
			return outcomeReplaced
		}
		m.records = append(m.records, rec)
		m.markDirtyLocked()
		return outcomeAdded

	case MergeSmart:
		if i := m.indexOfCallsign(rec); i >= 0 {
			m.records[i] = merge(m.records[i], rec)
			m.markDirtyLocked()
			return outcomeMerged
		}
		m.records = append(m.records, rec)
		m.markDirtyLocked()
		return outcomeAdded

	default: // MergeKeepAll
		for _, existing := range m.records {
			if existing.Equal(rec) {
				return outcomeDuplicate
			}
		}
		m.records = append(m.records, rec)
		m.markDirtyLocked()
		return outcomeAdded
	}
}

// indexOfCallsign returns the position of the first record matching rec's
// callsign case-insensitively, or -1.
func (m *Manager) indexOfCallsign(rec Record) int {
	for i, existing := range m.records {
		if existing.SameContact(rec) {
			return i
		}
	}
	return -1
}

func (m *Manager) markDirtyLocked() {
	m.dirty = true
	m.notifyLocked()
}

func (m *Manager) notifyLocked() {
	for _, fn := range m.observers {
		fn()
	}
}
