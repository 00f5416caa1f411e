package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/ledger"
	"github.com/ganeshsahu2020/SmileCastle/internal/punch"
	reporterrors "github.com/ganeshsahu2020/SmileCastle/internal/report/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	TypeDaily    = "daily"
	TypeBiweekly = "biweekly"
	TypeCustom   = "custom"

	cacheTTL = 5 * time.Minute
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GetReportFilterRequest) (ReportResponse, error)
	ExportCSV(ctx context.Context, req GetReportFilterRequest) ([]byte, error)
	ExportPDF(ctx context.Context, req GetReportFilterRequest) ([]byte, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	loc    *time.Location
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, rdb: rdb, loc: loc, logger: l}
}

func (s *service) Generate(ctx context.Context, req GetReportFilterRequest) (ReportResponse, error) {
	start, end, err := s.resolveWindow(req)
	if err != nil {
		return ReportResponse{}, err
	}
	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return ReportResponse{}, reporterrors.ErrInvalidDate
		}
	}

	cacheKey := fmt.Sprintf("report:%s:%s:%s:%s",
		req.Type, start.Format("2006-01-02"), end.Format("2006-01-02"), req.EmployeeID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	rows, err := s.repo.FindPunchesBetween(ctx, start, end, req.EmployeeID)
	if err != nil {
		return ReportResponse{}, err
	}

	resp := ReportResponse{
		Type:  req.Type,
		Start: start.In(s.loc).Format("2006-01-02"),
		End:   end.In(s.loc).Add(-24 * time.Hour).Format("2006-01-02"),
		Rows:  s.tally(rows),
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, cacheTTL)
		}
	}
	return resp, nil
}

func (s *service) ExportCSV(ctx context.Context, req GetReportFilterRequest) ([]byte, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"employee_code", "employee_name", "worked_hours", "break_hours", "total_hours"})
	for _, row := range resp.Rows {
		_ = w.Write([]string{
			row.EmployeeCode,
			row.EmployeeName,
			fmt.Sprintf("%.2f", row.WorkedHours),
			fmt.Sprintf("%.2f", row.BreakHours),
			fmt.Sprintf("%.2f", row.TotalHours),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) ExportPDF(ctx context.Context, req GetReportFilterRequest) ([]byte, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Time Report (%s) %s to %s", resp.Type, resp.Start, resp.End),
		"",
	}
	for _, row := range resp.Rows {
		lines = append(lines, fmt.Sprintf("%s  %s  worked %.2fh  break %.2fh  total %.2fh",
			row.EmployeeCode, row.EmployeeName, row.WorkedHours, row.BreakHours, row.TotalHours))
	}
	if len(resp.Rows) == 0 {
		lines = append(lines, "No punches in this period.")
	}
	return buildSimpleReportPDF(lines)
}

// resolveWindow turns the filter into a half-open UTC window aligned to local
// midnights.
func (s *service) resolveWindow(req GetReportFilterRequest) (time.Time, time.Time, error) {
	parse := func(v string) (time.Time, error) {
		t, err := time.ParseInLocation("2006-01-02", v, s.loc)
		if err != nil {
			return time.Time{}, reporterrors.ErrInvalidDate
		}
		return t, nil
	}

	switch req.Type {
	case TypeDaily:
		day, err := parse(req.Date)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return day, day.AddDate(0, 0, 1), nil
	case TypeBiweekly:
		day, err := parse(req.Date)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return day.AddDate(0, 0, -13), day.AddDate(0, 0, 1), nil
	case TypeCustom:
		start, err := parse(req.Start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := parse(req.End)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if start.After(end) {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidRange
		}
		return start, end.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidReportType
	}
}

// tally pairs each employee's punches day by day and sums the hours. Total is
// worked minus break, so an unreturned break cannot inflate paid time.
func (s *service) tally(rows []punch.Punch) []ReportRow {
	type acc struct {
		name, code     string
		worked, breaks float64
	}

	byUser := make(map[string][]ledger.Event)
	info := make(map[string]*acc)
	var order []string

	for _, p := range rows {
		uid := p.UserID.String()
		if _, seen := info[uid]; !seen {
			a := &acc{}
			if p.Employee != nil {
				a.name = p.Employee.Name
				a.code = p.Employee.EmployeeCode
			}
			info[uid] = a
			order = append(order, uid)
		}
		byUser[uid] = append(byUser[uid], ledger.Event{
			ID:        p.ID.String(),
			SubjectID: uid,
			Kind:      ledger.Kind(p.PunchType),
			Timestamp: p.Timestamp,
		})
	}

	for uid, evs := range byUser {
		for _, y := range ledger.Aggregate(evs, s.loc) {
			for _, m := range y.Months {
				for _, w := range m.Weeks {
					for _, d := range w.Days {
						worked, breaks := ledger.Totals(ledger.Reconcile(d.Events))
						info[uid].worked += worked
						info[uid].breaks += breaks
					}
				}
			}
		}
	}

	sort.Slice(order, func(i, j int) bool { return info[order[i]].code < info[order[j]].code })

	out := make([]ReportRow, len(order))
	for i, uid := range order {
		a := info[uid]
		out[i] = ReportRow{
			UserID:       uid,
			EmployeeName: a.name,
			EmployeeCode: a.code,
			WorkedHours:  a.worked,
			BreakHours:   a.breaks,
			TotalHours:   a.worked - a.breaks,
		}
	}
	return out
}
