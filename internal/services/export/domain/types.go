// Package domain defines the export service types and interfaces
package domain

import (
	"context"
	"time"

	cldom "courtledger/internal/services/causelist/domain"
)

// ExportResult describes one rendered cause-list document
type ExportResult struct {
	ExportID  string `json:"export_id"`
	CourtType string `json:"court_type"`
	Date      string `json:"date"`
	Path      string `json:"path"`
	Rows      int    `json:"rows"`
	Stamped   int64  `json:"stamped"`
}

// RendererPort turns a listing set into a document on disk
type RendererPort interface {
	Render(ctx context.Context, path string, listings []cldom.Listing) error
}

// ExporterPort is the public surface exposed by the export module
type ExporterPort interface {
	// ExportCauseList renders the (court_type, date) batch and stamps the
	// document path on every row of that batch
	ExportCauseList(ctx context.Context, ct cldom.CourtType, date time.Time) (ExportResult, error)
}

// Ports carries the cross-module dependencies the export module needs
type Ports struct {
	Query  cldom.QueryPort
	Writer cldom.WriterPort
}
