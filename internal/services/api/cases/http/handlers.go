// Package http provides http transport for case lookups
package http

import (
	stdhttp "net/http"

	"courtledger/internal/modkit/httpkit"
	"courtledger/internal/services/api/cases/domain"
	cqdom "courtledger/internal/services/casequery/domain"
	cldom "courtledger/internal/services/causelist/domain"
)

// Register mounts case lookup endpoints on the given router
func Register(r httpkit.Router, q cqdom.QueryPort) {
	h := &handlers{query: q}
	httpkit.PostJSON[domain.FetchInput](r, "/fetch", h.fetch)
	httpkit.PostJSON[domain.RecentInput](r, "/recent-searches", h.recent)
}

type handlers struct{ query cqdom.QueryPort }

// swagger:route POST /cases/fetch Cases casesFetch
// @Summary Look a case up on its court portal and log the attempt
// @Tags Cases
// @Accept json
// @Produce json
// @Param payload body domain.FetchInput true "Case identity"
// @Success 200 {object} cqdom.FetchResult "ok"
// @Router /cases/fetch [post]
func (h *handlers) fetch(r *stdhttp.Request, in domain.FetchInput) (any, error) {
	return h.query.FetchCase(r.Context(), cqdom.FetchRequest{
		CourtType:  cldom.CourtType(in.CourtType),
		CaseType:   in.CaseType,
		CaseNumber: in.CaseNumber,
		Year:       in.Year,
	})
}

// swagger:route POST /cases/recent-searches Cases casesRecent
// @Summary Recent case lookups, newest first
// @Tags Cases
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Paging"
// @Success 200 {array} cqdom.CaseQuery "ok"
// @Router /cases/recent-searches [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.query.RecentSearches(r.Context(), in.CourtType, in.Limit)
}
