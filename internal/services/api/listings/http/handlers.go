// Package http provides http transport for cause-list queries
package http

import (
	stdhttp "net/http"

	"courtledger/internal/modkit/httpkit"
	ptime "courtledger/internal/platform/time"
	"courtledger/internal/services/api/listings/domain"
	cldom "courtledger/internal/services/causelist/domain"
)

// Register mounts cause-list endpoints on the given router
func Register(r httpkit.Router, q cldom.QueryPort) {
	h := &handlers{query: q}
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.queryListings)
	httpkit.PostJSON[domain.TrackInput](r, "/track-case", h.track)
}

type handlers struct{ query cldom.QueryPort }

// swagger:route POST /cause-list/query Listings listingsQuery
// @Summary Query stored cause-list entries with filters and pagination
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Filters"
// @Success 200 {object} domain.QueryOutput "ok"
// @Router /cause-list/query [post]
func (h *handlers) queryListings(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	f, err := toFilters(in)
	if err != nil {
		return nil, err
	}
	rows, total, err := h.query.QueryListings(r.Context(), f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := domain.QueryOutput{
		Listings: make([]domain.Listing, 0, len(rows)),
		Total:    total,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	for _, l := range rows {
		out.Listings = append(out.Listings, domain.FromListing(l))
	}
	return out, nil
}

// swagger:route POST /cause-list/track-case Listings listingsTrack
// @Summary Status transition history for cases matching a number pattern
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.TrackInput true "Case pattern"
// @Success 200 {array} domain.Transition "ok"
// @Router /cause-list/track-case [post]
func (h *handlers) track(r *stdhttp.Request, in domain.TrackInput) (any, error) {
	trs, err := h.query.TrackCaseHistory(r.Context(), in.CaseNumber, in.DaysBack)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Transition, 0, len(trs))
	for _, tr := range trs {
		out = append(out, domain.FromTransition(tr))
	}
	return out, nil
}

func toFilters(in domain.QueryInput) (cldom.Filters, error) {
	f := cldom.Filters{
		CourtType:   cldom.CourtType(in.CourtType),
		CaseNumber:  in.CaseNumber,
		Judge:       in.Judge,
		Status:      in.Status,
		HearingType: in.HearingType,
	}
	if in.DateFrom != "" {
		t, err := ptime.ParseDate(in.DateFrom)
		if err != nil {
			return f, err
		}
		f.DateFrom = t
	}
	if in.DateTo != "" {
		t, err := ptime.ParseDate(in.DateTo)
		if err != nil {
			return f, err
		}
		f.DateTo = t
	}
	return f, nil
}
