package punch

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/events"
	"github.com/ganeshsahu2020/SmileCastle/internal/ledger"
	"github.com/ganeshsahu2020/SmileCastle/internal/messaging/kafka"
	puncherrors "github.com/ganeshsahu2020/SmileCastle/internal/punch/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusNotClockedIn      = "Not Clocked In"
	StatusClockedIn         = "Clocked In"
	StatusClockedOut        = "Clocked Out"
	StatusOnBreak           = "On Break"
	StatusReturnedFromBreak = "Returned from Break"
)

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	Punch(ctx context.Context, userID string, req PunchRequest) (PunchResponse, error)
	Status(ctx context.Context, userID string) (StatusResponse, error)
	History(ctx context.Context, userID string) (HistoryResponse, error)
	HistoryAll(ctx context.Context) (HistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	loc        *time.Location
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{db: db, repo: repo, outboxRepo: outboxRepo, loc: loc, logger: l}
}

func (s *service) Punch(ctx context.Context, userID string, req PunchRequest) (PunchResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return PunchResponse{}, puncherrors.ErrInvalidUserID
	}
	if !ledger.Kind(req.PunchType).Valid() {
		return PunchResponse{}, puncherrors.ErrInvalidPunchType
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	row := &Punch{
		ID:        uuid.New(),
		UserID:    userUUID,
		PunchType: req.PunchType,
		Timestamp: now,
		Source:    events.PunchSourceDirect,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create punch persist failed", zap.Error(err))
		return PunchResponse{}, err
	}

	if err := s.enqueuePunchRecorded(ctx, tx, row); err != nil {
		s.logger.Error("enqueue punch_recorded failed", zap.Error(err))
		return PunchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}

	s.logger.Info("punch recorded",
		zap.String("punch_id", row.ID.String()),
		zap.String("user_id", userID),
		zap.String("punch_type", row.PunchType),
	)
	return mapToResponse(*row), nil
}

func (s *service) Status(ctx context.Context, userID string) (StatusResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return StatusResponse{}, puncherrors.ErrInvalidUserID
	}

	last, err := s.repo.FindLastByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResponse{Status: StatusNotClockedIn}, nil
		}
		return StatusResponse{}, err
	}

	switch ledger.Kind(last.PunchType) {
	case ledger.KindIn:
		return StatusResponse{Status: StatusClockedIn}, nil
	case ledger.KindOut:
		return StatusResponse{Status: StatusClockedOut}, nil
	case ledger.KindBreakIn:
		return StatusResponse{Status: StatusOnBreak}, nil
	case ledger.KindBreakOut:
		return StatusResponse{Status: StatusReturnedFromBreak}, nil
	default:
		return StatusResponse{Status: StatusNotClockedIn}, nil
	}
}

// History returns the caller's punches grouped year/month/week/day with
// worked/break durations on the closing punches.
func (s *service) History(ctx context.Context, userID string) (HistoryResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return HistoryResponse{}, puncherrors.ErrInvalidUserID
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return HistoryResponse{}, err
	}

	hierarchy := ledger.Aggregate(toLedgerEvents(rows), s.loc)
	return s.renderHistory(hierarchy, rows, true), nil
}

// HistoryAll is the admin view over every employee. Day buckets mix subjects,
// so no duration pairing is attempted here; names and codes are attached
// instead.
func (s *service) HistoryAll(ctx context.Context) (HistoryResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return HistoryResponse{}, err
	}

	hierarchy := ledger.Aggregate(toLedgerEvents(rows), s.loc)
	return s.renderHistory(hierarchy, rows, false), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return puncherrors.ErrPunchNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	contextutil.GetLogger(ctx, s.logger).Warn("punch deleted by admin", zap.String("punch_id", id))
	return nil
}

func (s *service) enqueuePunchRecorded(ctx context.Context, tx *sql.Tx, row *Punch) error {
	payload, err := json.Marshal(events.PunchRecordedEvent{
		EventType: "punch_recorded",
		PunchID:   row.ID.String(),
		UserID:    row.UserID.String(),
		PunchType: row.PunchType,
		Timestamp: row.Timestamp,
		Source:    row.Source,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "punch",
		AggregateID:   row.ID.String(),
		EventType:     "punch_recorded",
		Topic:         events.PunchRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func toLedgerEvents(rows []Punch) []ledger.Event {
	out := make([]ledger.Event, len(rows))
	for i, p := range rows {
		out[i] = ledger.Event{
			ID:        p.ID.String(),
			SubjectID: p.UserID.String(),
			Kind:      ledger.Kind(p.PunchType),
			Timestamp: p.Timestamp,
		}
	}
	return out
}

func (s *service) renderHistory(hierarchy ledger.Hierarchy, rows []Punch, annotate bool) HistoryResponse {
	byID := make(map[string]*Punch, len(rows))
	for i := range rows {
		byID[rows[i].ID.String()] = &rows[i]
	}

	resp := HistoryResponse{Years: []YearGroup{}}
	for _, y := range hierarchy {
		yg := YearGroup{Year: y.Year}
		for _, m := range y.Months {
			mg := MonthGroup{Name: m.Name}
			for _, w := range m.Weeks {
				wg := WeekGroup{Week: w.Week}
				for _, d := range w.Days {
					dg := DayGroup{Date: d.Date}

					var annotated []ledger.AnnotatedEvent
					if annotate {
						annotated = ledger.Reconcile(d.Events)
					} else {
						annotated = make([]ledger.AnnotatedEvent, len(d.Events))
						for i, ev := range d.Events {
							annotated[i] = ledger.AnnotatedEvent{Event: ev}
						}
					}

					for _, ev := range annotated {
						entry := PunchEntry{
							ID:        ev.ID,
							PunchType: string(ev.Kind),
							Timestamp: ev.Timestamp.In(s.loc).Format(time.RFC3339),
						}
						if ev.Annotation != nil {
							label := ev.Annotation.String()
							entry.Duration = &label
						}
						if p := byID[ev.ID]; p != nil && p.Employee != nil {
							entry.EmployeeName = &p.Employee.Name
							entry.EmployeeCode = &p.Employee.EmployeeCode
						}
						dg.Punches = append(dg.Punches, entry)
					}
					wg.Days = append(wg.Days, dg)
				}
				mg.Weeks = append(mg.Weeks, wg)
			}
			yg.Months = append(yg.Months, mg)
		}
		resp.Years = append(resp.Years, yg)
	}
	return resp
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		PunchType: p.PunchType,
		Timestamp: p.Timestamp.Format(time.RFC3339),
		Source:    p.Source,
	}
}
