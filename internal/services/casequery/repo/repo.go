// Package repo provides the casequery repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"

	"courtledger/internal/modkit/repokit"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/store"
	"courtledger/internal/services/casequery/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the casequery repository
type Storage interface {
	Insert(ctx context.Context, cq domain.CaseQuery) error
	Recent(ctx context.Context, courtType string, limit int) ([]domain.CaseQuery, error)
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, cq domain.CaseQuery) error {
	err := store.ExecOne(ctx, s.q, `
	INSERT INTO case_queries
		(id, case_type, case_number, year, court_type,
		parties, filing_date, next_hearing_date, case_status, judgment_url,
		success, error_message)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		cq.ID, cq.CaseType, cq.CaseNumber, cq.Year, cq.CourtType,
		cq.Parties, cq.FilingDate, cq.NextHearingDate, cq.CaseStatus, cq.JudgmentURL,
		cq.Success, cq.ErrorMessage,
	)
	if err != nil {
		return perr.FromPostgres(err)
	}
	return nil
}

// Recent implements Storage
func (s *pg) Recent(ctx context.Context, courtType string, limit int) ([]domain.CaseQuery, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
	SELECT id::text, case_type, case_number, year, court_type,
		parties, filing_date, next_hearing_date, case_status, judgment_url,
		success, error_message, created_at
	FROM case_queries
	WHERE TRUE
	`)
	if courtType != "" {
		sb.WriteString("  AND court_type = " + arg(courtType) + "\n")
	}
	sb.WriteString("ORDER BY created_at DESC\nLIMIT " + arg(limit))

	out, err := store.StructsByName[domain.CaseQuery](ctx, s.q, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	return out, nil
}
