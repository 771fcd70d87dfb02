// Package service provides the export service implementation
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
	dom "courtledger/internal/services/export/domain"
)

// Config for the export service
type Config struct {
	// Dir receives rendered documents
	Dir string
}

// Service renders cause-list batches and stamps the shared document path
type Service struct {
	Query    cldom.QueryPort
	Writer   cldom.WriterPort
	Renderer dom.RendererPort
	Cfg      Config
}

// New constructs the export service
func New(query cldom.QueryPort, writer cldom.WriterPort, renderer dom.RendererPort, cfg Config) *Service {
	if query == nil {
		panic("export.Service requires a non nil QueryPort")
	}
	if writer == nil {
		panic("export.Service requires a non nil WriterPort")
	}
	if renderer == nil {
		panic("export.Service requires a non nil Renderer")
	}
	if cfg.Dir == "" {
		cfg.Dir = "exports"
	}
	return &Service{Query: query, Writer: writer, Renderer: renderer, Cfg: cfg}
}

// ExportCauseList implements domain.ExporterPort
func (s *Service) ExportCauseList(ctx context.Context, ct cldom.CourtType, date time.Time) (dom.ExportResult, error) {
	if !ct.Valid() {
		return dom.ExportResult{}, perr.InvalidArgf("unknown court type %q", ct)
	}
	date = ptime.Midnight(date)

	day := ptime.FormatDate(date)
	rows, _, err := s.Query.QueryListings(ctx, cldom.Filters{
		CourtType: ct,
		DateFrom:  date,
		DateTo:    date,
	}, -1, 0)
	if err != nil {
		return dom.ExportResult{}, err
	}
	if len(rows) == 0 {
		return dom.ExportResult{}, perr.NotFoundf("no listings for %s on %s", ct, day)
	}

	exportID := uuid.NewString()
	path := filepath.Join(s.Cfg.Dir, fmt.Sprintf("%s_%s_%s.csv", ct, day, exportID[:8]))

	if err := s.Renderer.Render(ctx, path, rows); err != nil {
		return dom.ExportResult{}, err
	}

	stamped, err := s.Writer.StampExportPath(ctx, ct, date, path)
	if err != nil {
		return dom.ExportResult{}, err
	}

	logger.C(ctx).Info().
		Str("court_type", string(ct)).
		Str("date", day).
		Str("path", path).
		Int("rows", len(rows)).
		Int64("stamped", stamped).
		Msg("cause list exported")
	return dom.ExportResult{
		ExportID:  exportID,
		CourtType: string(ct),
		Date:      day,
		Path:      path,
		Rows:      len(rows),
		Stamped:   stamped,
	}, nil
}
