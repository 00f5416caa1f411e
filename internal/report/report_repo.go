package report

import (
	"context"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/punch"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	// FindPunchesBetween returns punches with their employee preloaded for the
	// half-open window [start, end), optionally narrowed to one employee.
	FindPunchesBetween(ctx context.Context, start, end time.Time, employeeID string) ([]punch.Punch, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindPunchesBetween(ctx context.Context, start, end time.Time, employeeID string) ([]punch.Punch, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp ASC, created_at ASC")
	if employeeID != "" {
		q = q.Where("user_id = ?", employeeID)
	}

	var rows []punch.Punch
	err := q.Find(&rows).Error
	return rows, err
}
