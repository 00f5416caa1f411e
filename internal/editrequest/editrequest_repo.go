package editrequest

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=editrequest_repo.go -destination=mock/editrequest_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *EditRequest) error
	FindByID(ctx context.Context, id string) (*EditRequest, error)
	FindAllPending(ctx context.Context) ([]EditRequest, error)
	FindAllByUser(ctx context.Context, userID string) ([]EditRequest, error)
	// DeletePending removes the row if it still exists and reports how many
	// rows went away. Zero means someone else resolved it first.
	DeletePending(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *EditRequest) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*EditRequest, error) {
	var e EditRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAllPending(ctx context.Context) ([]EditRequest, error) {
	var rows []EditRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]EditRequest, error) {
	var rows []EditRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeletePending(ctx context.Context, id string) (int64, error) {
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, `DELETE FROM edit_requests WHERE id = $1`, id)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	res := r.db.WithContext(ctx).Delete(&EditRequest{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
