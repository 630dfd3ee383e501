// Package audit provides database operations for audit events.
//
// # Usage
//
//	repo := audit.NewRepository(db.DB)
//	err := repo.LogEvent(&entities.AuditEvent{...})
package audit

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// Repository handles all audit event database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new audit repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent persists a single audit event.
func (r *Repository) LogEvent(event *entities.AuditEvent) error {
	if event.Status == "" {
		event.Status = entities.AuditStatusSuccess
	}
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to log audit event: %w", err)
	}
	return nil
}

// GetEvents retrieves audit events, newest first, with the total count.
func (r *Repository) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	var total int64
	if err := r.db.Model(&entities.AuditEvent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var events []entities.AuditEvent
	err := query.Find(&events).Error
	return events, total, err
}

// GetEventsByType retrieves audit events of a single type, newest first.
func (r *Repository) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	var total int64
	if err := r.db.Model(&entities.AuditEvent{}).Where("event_type = ?", eventType).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("event_type = ?", eventType).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var events []entities.AuditEvent
	err := query.Find(&events).Error
	return events, total, err
}

// DeleteOldEvents removes events created before the cutoff time and
// returns the number of rows removed.
func (r *Repository) DeleteOldEvents(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}
