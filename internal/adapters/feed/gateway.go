package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	ptime "courtledger/internal/platform/time"
	"courtledger/internal/services/causelist/domain"
)

const (
	gatewayTimeout  = 30 * time.Second
	gatewayUA       = "courtledger-feed"
	breakerFailures = 5
	breakerCooldown = 30 * time.Second
)

// GatewayOptions configures the portal gateway client
type GatewayOptions struct {
	Timeout   time.Duration
	UserAgent string

	// BreakerFailures consecutive failures open the per-court breaker
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// Gateway fetches cause lists over HTTP, one circuit breaker per court so a
// dead portal cannot starve the others
type Gateway struct {
	http *http.Client
	reg  *Registry
	opts GatewayOptions
	log  logger.Logger

	mu       sync.Mutex
	breakers map[domain.CourtType]*gobreaker.CircuitBreaker
}

// NewGateway constructs a Gateway over a courts registry
func NewGateway(reg *Registry, o GatewayOptions) *Gateway {
	if reg == nil {
		panic("feed.Gateway requires a courts registry")
	}
	if o.Timeout <= 0 {
		o.Timeout = gatewayTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = gatewayUA
	}
	if o.BreakerFailures == 0 {
		o.BreakerFailures = breakerFailures
	}
	if o.BreakerCooldown <= 0 {
		o.BreakerCooldown = breakerCooldown
	}
	return &Gateway{
		http:     &http.Client{Timeout: o.Timeout},
		reg:      reg,
		opts:     o,
		log:      *logger.Named("feed"),
		breakers: make(map[domain.CourtType]*gobreaker.CircuitBreaker),
	}
}

func (g *Gateway) breaker(ct domain.CourtType) *gobreaker.CircuitBreaker {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cb, ok := g.breakers[ct]; ok {
		return cb
	}
	failures := g.opts.BreakerFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "feed:" + string(ct),
		Timeout: g.opts.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// A missing case is a portal answer, not a portal outage
		IsSuccessful: func(err error) bool {
			return err == nil || perr.IsCode(err, perr.ErrorCodeNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("feed breaker state change")
		},
	})
	g.breakers[ct] = cb
	return cb
}

type rawCaseDTO struct {
	CaseNumber  string `json:"case_number"`
	Parties     string `json:"parties"`
	HearingType string `json:"hearing_type"`
	Time        string `json:"time"`
	CourtRoom   string `json:"court_room"`
	Judge       string `json:"judge"`
	Status      string `json:"status"`
}

type listResponse struct {
	Cases []rawCaseDTO `json:"cases"`
}

// Fetch implements Fetcher
func (g *Gateway) Fetch(ctx context.Context, ct domain.CourtType, date time.Time) ([]domain.RawListing, error) {
	court, ok := g.reg.Lookup(ct)
	if !ok {
		return nil, perr.Adapterf("no portal registered for court type %q", ct)
	}

	out, err := g.breaker(ct).Execute(func() (any, error) {
		return g.fetchList(ctx, court, date)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, perr.Adapterf("portal gateway circuit open for %s", ct)
		}
		return nil, err
	}
	return out.([]domain.RawListing), nil
}

func (g *Gateway) fetchList(ctx context.Context, court Court, date time.Time) ([]domain.RawListing, error) {
	u := court.BaseURL + court.ListPath + "?date=" + url.QueryEscape(ptime.FormatDate(date))
	body, err := g.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, perr.AdapterWrap(err, "parse cause list from %s", court.CourtType)
	}

	out := make([]domain.RawListing, 0, len(resp.Cases))
	for _, c := range resp.Cases {
		out = append(out, domain.RawListing{
			CaseNumber:  c.CaseNumber,
			Parties:     c.Parties,
			HearingType: c.HearingType,
			Time:        c.Time,
			CourtRoom:   c.CourtRoom,
			Judge:       c.Judge,
			Status:      c.Status,
		})
	}
	return out, nil
}

// FetchCase implements CaseFetcher
func (g *Gateway) FetchCase(
	ctx context.Context,
	ct domain.CourtType,
	caseType, caseNumber string,
	year int,
) (CaseDetails, error) {
	court, ok := g.reg.Lookup(ct)
	if !ok {
		return CaseDetails{}, perr.Adapterf("no portal registered for court type %q", ct)
	}

	q := url.Values{}
	q.Set("case_type", caseType)
	q.Set("case_number", caseNumber)
	q.Set("year", fmt.Sprintf("%d", year))
	u := court.BaseURL + court.CasePath + "?" + q.Encode()

	out, err := g.breaker(ct).Execute(func() (any, error) {
		body, err := g.get(ctx, u)
		if err != nil {
			return CaseDetails{}, err
		}
		var d CaseDetails
		if err := json.Unmarshal(body, &d); err != nil {
			return CaseDetails{}, perr.AdapterWrap(err, "parse case details from %s", court.CourtType)
		}
		return d, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return CaseDetails{}, perr.Adapterf("portal gateway circuit open for %s", ct)
		}
		return CaseDetails{}, err
	}
	d := out.(CaseDetails)
	d.CourtType = string(ct)
	return d, nil
}

func (g *Gateway) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.AdapterWrap(err, "build portal request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.opts.UserAgent)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, perr.AdapterWrap(err, "portal gateway unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, perr.AdapterWrap(err, "read portal response")
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, perr.NotFoundf("portal returned 404")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, perr.Adapterf("portal returned %d", resp.StatusCode)
	}
	return body, nil
}
