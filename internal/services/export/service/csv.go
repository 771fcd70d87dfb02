package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	perr "courtledger/internal/platform/errors"
	pstrings "courtledger/internal/platform/strings"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
)

// CSVRenderer writes cause-list batches as CSV documents
type CSVRenderer struct{}

// NewCSVRenderer constructs a CSVRenderer
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

var csvHeader = []string{
	"sr_no", "case_number", "parties", "hearing_type",
	"time", "court_room", "judge", "status", "date",
}

// Render implements domain.RendererPort
func (*CSVRenderer) Render(_ context.Context, path string, listings []cldom.Listing) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "create export dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "create export file")
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write export header")
	}
	for _, l := range listings {
		rec := []string{
			strconv.Itoa(l.SrNo),
			l.CaseNumber,
			pstrings.Deref(l.Parties),
			pstrings.Deref(l.HearingType),
			pstrings.Deref(l.Time),
			pstrings.Deref(l.CourtRoom),
			pstrings.Deref(l.Judge),
			l.Status,
			ptime.FormatDate(l.Date),
		}
		if err := w.Write(rec); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write export row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "flush export")
	}
	return f.Close()
}
