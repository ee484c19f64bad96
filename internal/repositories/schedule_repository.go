package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripnote/internal/models/db_models"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *db_models.Schedule) error
	FindByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) (*db_models.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (r *scheduleRepository) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "workspace_id = ?", workspaceID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &schedule, nil
}
