package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logbook-manager/feature/logbook"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service persists and restores logbook snapshots.
type Service struct {
	db      *gorm.DB
	manager *logbook.Manager
	logger  *zap.Logger
}

// NewService creates a new archive service.
func NewService(db *gorm.DB, manager *logbook.Manager, logger *zap.Logger) *Service {
	return &Service{db: db, manager: manager, logger: logger}
}

// Migrate creates the snapshot tables if they do not exist.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&Snapshot{}, &SnapshotRecord{}); err != nil {
		return fmt.Errorf("failed to migrate archive tables: %w", err)
	}
	return nil
}

// Snapshot stores a named copy of the current record list.
func (s *Service) Snapshot(ctx context.Context, name string) (*Snapshot, error) {
	records := s.manager.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("nothing to snapshot: record list is empty")
	}

	snap := &Snapshot{
		ID:          uuid.NewString(),
		Name:        name,
		RecordCount: len(records),
		CreatedAt:   time.Now().UTC(),
		Records:     make([]SnapshotRecord, 0, len(records)),
	}
	for i, rec := range records {
		snap.Records = append(snap.Records, SnapshotRecord{
			SnapshotID: snap.ID,
			Position:   i,
			Callsign:   rec.Callsign,
			Locator:    rec.Locator,
			Exchange:   rec.Exchange,
			Comment:    rec.Comment,
		})
	}

	if err := s.db.WithContext(ctx).Create(snap).Error; err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Info("Snapshot stored",
		zap.String("id", snap.ID),
		zap.String("name", snap.Name),
		zap.Int("records", snap.RecordCount),
	)
	return snap, nil
}

// List returns all snapshots, newest first, without their records.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	var snapshots []Snapshot
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// Restore replays an archived snapshot through the reconciliation engine
// under the active merge policy. The current record list is not cleared
// first; combine with a reset for an exact rollback.
func (s *Service) Restore(ctx context.Context, id string) (*logbook.MergeSummary, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &logbook.NotFoundError{Path: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}

	var rows []SnapshotRecord
	if err := s.db.WithContext(ctx).
		Where("snapshot_id = ?", id).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load snapshot records: %w", err)
	}

	records := make([]logbook.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}

	summary := s.manager.MergeRecords(records)
	s.logger.Info("Snapshot restored",
		zap.String("id", id),
		zap.Int("scanned", summary.Scanned),
		zap.Int("added", summary.Added),
	)
	return summary, nil
}

// Delete removes a snapshot and its records.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).
		Where("snapshot_id = ?", id).
		Delete(&SnapshotRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete snapshot records: %w", err)
	}

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Snapshot{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &logbook.NotFoundError{Path: id}
	}

	s.logger.Info("Snapshot deleted", zap.String("id", id))
	return nil
}
