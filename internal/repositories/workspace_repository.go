package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripnote/internal/models/db_models"
)

type WorkspaceRepository interface {
	Insert(ctx context.Context, workspace *db_models.Workspace) error
	Update(ctx context.Context, workspace *db_models.Workspace) error
	FindByID(ctx context.Context, id string) (*db_models.Workspace, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]db_models.Workspace, error)
}

type workspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{
		db: db,
	}
}

func (r *workspaceRepository) Insert(ctx context.Context, workspace *db_models.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

func (r *workspaceRepository) Update(ctx context.Context, workspace *db_models.Workspace) error {
	return r.db.WithContext(ctx).Save(workspace).Error
}

func (r *workspaceRepository) FindByID(ctx context.Context, id string) (*db_models.Workspace, error) {
	var workspace db_models.Workspace
	err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &workspace, nil
}

func (r *workspaceRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]db_models.Workspace, error) {
	var workspaces []db_models.Workspace
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&workspaces).Error
	if err != nil {
		return nil, err
	}

	return workspaces, nil
}
