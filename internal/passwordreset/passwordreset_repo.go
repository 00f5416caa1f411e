package passwordreset

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=passwordreset_repo.go -destination=mock/passwordreset_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *ResetRequest) error
	FindByID(ctx context.Context, id string) (*ResetRequest, error)
	FindAll(ctx context.Context) ([]ResetRequest, error)
	// Resolve flips a Pending row to the given status and reports how many
	// rows changed. Zero means the request was already resolved. A non-nil
	// issuedSecret (the hashed temp password) is stored alongside an approval.
	Resolve(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error)
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

func (r *repository) Create(ctx context.Context, req *ResetRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ResetRequest, error) {
	var req ResetRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindAll(ctx context.Context) ([]ResetRequest, error) {
	var rows []ResetRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Resolve(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error) {
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx,
			`UPDATE password_reset_requests
			 SET status = $1, resolved_by = $2, resolved_at = $3, issued_temp_secret = $4
			 WHERE id = $5 AND status = $6`,
			status, resolvedBy, resolvedAt, issuedSecret, id, StatusPending,
		)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	res := r.db.WithContext(ctx).
		Model(&ResetRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":             status,
			"resolved_by":        resolvedBy,
			"resolved_at":        resolvedAt,
			"issued_temp_secret": issuedSecret,
		})
	return res.RowsAffected, res.Error
}
