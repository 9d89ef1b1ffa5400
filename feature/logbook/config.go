package logbook

// Config holds configuration for the reconciliation engine.
type Config struct {
	// MergeMode is the default merge policy (keep-all, keep-recent, smart-merge).
	MergeMode string `mapstructure:"merge_mode" default:"keep-all"`
	// DropCallsignOnly drops incoming records that carry no data beyond the callsign.
	DropCallsignOnly bool `mapstructure:"drop_callsign_only" default:"false"`
	// StoragePrefix is the object-storage prefix under which log files live.
	StoragePrefix string `mapstructure:"storage_prefix" default:"logs/"`
}
