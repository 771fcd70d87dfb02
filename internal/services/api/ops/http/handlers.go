// Package http provides http transport for sweep, reminder and export runs
package http

import (
	"context"
	stdhttp "net/http"
	"strconv"

	"courtledger/internal/modkit/httpkit"
	"courtledger/internal/platform/logger"
	ptime "courtledger/internal/platform/time"
	"courtledger/internal/services/api/ops/domain"
	cldom "courtledger/internal/services/causelist/domain"
	expdom "courtledger/internal/services/export/domain"
	remdom "courtledger/internal/services/reminders/domain"
	sweepdom "courtledger/internal/services/sweep/domain"
)

// Deps carries the run ports the ops endpoints drive
type Deps struct {
	Runner    sweepdom.RunnerPort
	Scheduler remdom.SchedulerPort
	Exporter  expdom.ExporterPort
	Audit     cldom.AuditPort
}

// Register mounts ops endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.SyncInput](r, "/sync", h.sync)
	httpkit.PostJSON[domain.SyncInput](r, "/auto-update", h.autoUpdate)
	httpkit.PostJSON[domain.RemindersInput](r, "/reminders", h.reminders)
	httpkit.PostJSON[domain.ExportInput](r, "/export", h.export)
	httpkit.Get(r, "/transitions", h.transitions)
}

type handlers struct{ deps Deps }

// swagger:route POST /ops/sync Ops opsSync
// @Summary Sweep court portals and reconcile listings, waiting for the result
// @Tags Ops
// @Accept json
// @Produce json
// @Param payload body domain.SyncInput true "Scope"
// @Success 200 {object} sweepdom.SweepResult "ok"
// @Router /ops/sync [post]
func (h *handlers) sync(r *stdhttp.Request, in domain.SyncInput) (any, error) {
	return h.deps.Runner.SyncAll(r.Context(), courtTypes(in.CourtTypes), in.Days)
}

// swagger:route POST /ops/auto-update Ops opsAutoUpdate
// @Summary Launch a sweep in the background and return immediately
// @Tags Ops
// @Accept json
// @Produce json
// @Param payload body domain.SyncInput true "Scope"
// @Success 200 {object} domain.Accepted "accepted"
// @Router /ops/auto-update [post]
func (h *handlers) autoUpdate(r *stdhttp.Request, in domain.SyncInput) (any, error) {
	// Detach from the request so the sweep outlives the response
	ctx := context.WithoutCancel(r.Context())
	go func() {
		if _, err := h.deps.Runner.SyncAll(ctx, courtTypes(in.CourtTypes), in.Days); err != nil {
			logger.C(ctx).Warn().Err(err).Msg("background sweep failed")
		}
	}()
	return domain.Accepted{Accepted: true, CourtTypes: in.CourtTypes, Days: in.Days}, nil
}

// swagger:route POST /ops/reminders Ops opsReminders
// @Summary Dispatch hearing reminders for upcoming active listings
// @Tags Ops
// @Accept json
// @Produce json
// @Param payload body domain.RemindersInput true "Horizon"
// @Success 200 {object} remdom.ReminderResult "ok"
// @Router /ops/reminders [post]
func (h *handlers) reminders(r *stdhttp.Request, in domain.RemindersInput) (any, error) {
	return h.deps.Scheduler.ScheduleReminders(r.Context(), in.DaysAhead)
}

// swagger:route POST /ops/export Ops opsExport
// @Summary Render one day's cause list to a document and stamp its path
// @Tags Ops
// @Accept json
// @Produce json
// @Param payload body domain.ExportInput true "Batch"
// @Success 200 {object} expdom.ExportResult "ok"
// @Router /ops/export [post]
func (h *handlers) export(r *stdhttp.Request, in domain.ExportInput) (any, error) {
	date, err := ptime.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return h.deps.Exporter.ExportCauseList(r.Context(), cldom.CourtType(in.CourtType), date)
}

// swagger:route GET /ops/transitions Ops opsTransitions
// @Summary List recently observed status transitions from the audit sink
// @Tags Ops
// @Produce json
// @Param court_type query string false "Narrow to one court type"
// @Param limit query int false "Max rows, default 100"
// @Success 200 {array} cldom.AuditedTransition "ok"
// @Router /ops/transitions [get]
func (h *handlers) transitions(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	return h.deps.Audit.RecentTransitions(r.Context(), cldom.CourtType(q.Get("court_type")), limit)
}

func courtTypes(in []string) []cldom.CourtType {
	out := make([]cldom.CourtType, 0, len(in))
	for _, s := range in {
		out = append(out, cldom.CourtType(s))
	}
	return out
}
