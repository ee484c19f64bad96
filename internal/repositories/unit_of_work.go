package repositories

import (
	"context"

	"gorm.io/gorm"
)

// ScheduleUnitOfWork scopes the workspace-creation + schedule-persistence
// write path to one transaction. The closure receives transaction-bound
// repositories; returning an error rolls everything back, so a failed
// schedule insert also undoes the workspace row.
type ScheduleUnitOfWork interface {
	Do(ctx context.Context, fn func(workspaces WorkspaceRepository, schedules ScheduleRepository) error) error
}

type gormScheduleUnitOfWork struct {
	db *gorm.DB
}

func NewScheduleUnitOfWork(db *gorm.DB) ScheduleUnitOfWork {
	return &gormScheduleUnitOfWork{
		db: db,
	}
}

func (u *gormScheduleUnitOfWork) Do(ctx context.Context, fn func(workspaces WorkspaceRepository, schedules ScheduleRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewWorkspaceRepository(tx), NewScheduleRepository(tx))
	})
}
