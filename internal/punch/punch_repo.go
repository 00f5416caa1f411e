package punch

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	FindLastByUser(ctx context.Context, userID string) (*Punch, error)
	// FindAllByUser returns the user's punches ascending by timestamp with
	// insertion order as the tiebreak, which is the order the reconciler
	// expects.
	FindAllByUser(ctx context.Context, userID string) ([]Punch, error)
	FindAllByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Punch, error)
	FindAll(ctx context.Context) ([]Punch, error)
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, p *Punch) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO punches (id, user_id, punch_type, timestamp, source, created_at) VALUES ($1, $2, $3, $4, $5, NOW())`,
			p.ID, p.UserID, p.PunchType, p.Timestamp, p.Source,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindLastByUser(ctx context.Context, userID string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, created_at DESC").
		First(&p).Error
	return &p, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("timestamp ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Punch{}, "id = ?", id).Error
}
