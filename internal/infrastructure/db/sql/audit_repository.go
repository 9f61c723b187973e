package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/wellness/portal/internal/core/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	m := auditModel{
		Kind:   string(event.Kind),
		Email:  event.Email,
		Detail: event.Detail,
		At:     event.At,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
