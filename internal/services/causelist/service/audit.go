package service

import (
	"context"
	"fmt"
	"strings"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	dom "courtledger/internal/services/causelist/domain"
)

// auditTable receives one row per observed status transition
const auditTable = "listing_transitions"

var auditCols = []string{
	"sweep_id", "court_type", "listing_date", "case_number",
	"old_status", "new_status", "observed_at",
}

// auditTransitions appends transitions to the ClickHouse sink.
// Best effort: an unreachable sink is logged, never surfaced, the Postgres
// commit already happened
func (s *Service) auditTransitions(ctx context.Context, xs []dom.StatusTransition) {
	if s.Audit == nil || len(xs) == 0 {
		return
	}
	sweepID := logger.SweepID(ctx)
	rows := make([][]any, 0, len(xs))
	for _, tr := range xs {
		rows = append(rows, []any{
			sweepID, string(tr.CourtType), tr.ListingDate, tr.CaseNumber,
			tr.OldStatus, tr.NewStatus, tr.ObservedAt,
		})
	}
	if err := s.Audit.Insert(ctx, auditTable, auditCols, rows); err != nil {
		logger.C(ctx).Warn().Err(err).
			Int("transitions", len(xs)).
			Msg("transition audit insert failed")
	}
}

// RecentTransitions implements domain.AuditPort over the ClickHouse sink
func (s *Service) RecentTransitions(ctx context.Context, ct dom.CourtType, limit int) ([]dom.AuditedTransition, error) {
	if s.Audit == nil {
		return nil, perr.Unavailablef("transition audit sink not configured")
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + strings.Join(auditCols, ", ") + " FROM " + auditTable)
	args := []any{}
	if ct != "" {
		sb.WriteString(" WHERE court_type = ?")
		args = append(args, string(ct))
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY observed_at DESC LIMIT %d", limit))

	rows, err := s.Audit.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "transition audit query")
	}
	defer rows.Close()

	var out []dom.AuditedTransition
	for rows.Next() {
		var (
			tr  dom.AuditedTransition
			raw string
		)
		if err := rows.Scan(
			&tr.SweepID, &raw, &tr.ListingDate, &tr.CaseNumber,
			&tr.OldStatus, &tr.NewStatus, &tr.ObservedAt,
		); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "transition audit scan")
		}
		tr.CourtType = dom.CourtType(raw)
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "transition audit rows")
	}
	return out, nil
}
