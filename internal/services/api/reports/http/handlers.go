// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"courtledger/internal/modkit/httpkit"
	ptime "courtledger/internal/platform/time"
	"courtledger/internal/services/api/reports/domain"
	svc "courtledger/internal/services/api/reports/service"
	cldom "courtledger/internal/services/causelist/domain"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.BuildInput](r, "/build", h.build)
	httpkit.PostJSON[domain.StatisticsInput](r, "/statistics", h.statistics)
}

type handlers struct{ svc *svc.Service }

// swagger:route POST /reports/build Reports reportsBuild
// @Summary Build a cause-list report for a court and date window
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.BuildInput true "Window"
// @Success 200 {object} any "ok"
// @Router /reports/build [post]
func (h *handlers) build(r *stdhttp.Request, in domain.BuildInput) (any, error) {
	from, err := ptime.ParseDate(in.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := ptime.ParseDate(in.DateTo)
	if err != nil {
		return nil, err
	}
	return h.svc.Build(r.Context(), in.CourtType, from, to, in.IncludeStatistics)
}

// swagger:route POST /reports/statistics Reports reportsStatistics
// @Summary Tally stored listings by status, court and date
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.StatisticsInput true "Filters"
// @Success 200 {object} any "ok"
// @Router /reports/statistics [post]
func (h *handlers) statistics(r *stdhttp.Request, in domain.StatisticsInput) (any, error) {
	f := cldom.Filters{CourtType: cldom.CourtType(in.CourtType)}
	if in.DateFrom != "" {
		t, err := ptime.ParseDate(in.DateFrom)
		if err != nil {
			return nil, err
		}
		f.DateFrom = t
	}
	if in.DateTo != "" {
		t, err := ptime.ParseDate(in.DateTo)
		if err != nil {
			return nil, err
		}
		f.DateTo = t
	}
	return h.svc.Statistics(r.Context(), f)
}
