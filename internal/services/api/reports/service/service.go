// Package service caches report builds in front of the causelist report port
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtledger/internal/platform/logger"
	"courtledger/internal/platform/store"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
)

// Config tunes report caching
type Config struct {
	// CacheTTL bounds how stale a cached report may get. Zero disables caching
	CacheTTL time.Duration
}

// Service fronts the report port with an optional ttl cache.
// Reports over closed date windows are immutable once the day's sweep has
// run, so a short ttl trades little freshness for a lot of repeated tallying
type Service struct {
	reports cldom.ReportPort
	cache   store.Cache
	cfg     Config
}

// New constructs a report service. Cache may be nil
func New(reports cldom.ReportPort, cache store.Cache, cfg Config) *Service {
	if reports == nil {
		panic("reports service requires a report port")
	}
	return &Service{reports: reports, cache: cache, cfg: cfg}
}

// Build returns the report for the window, from cache when fresh
func (s *Service) Build(ctx context.Context, courtType string, from, to time.Time, includeStats bool) (json.RawMessage, error) {
	key := fmt.Sprintf("report:%s:%s:%s:%t", courtType, ptime.FormatDate(from), ptime.FormatDate(to), includeStats)
	if raw, ok := s.cacheGet(ctx, key); ok {
		return raw, nil
	}
	rep, err := s.reports.BuildReport(ctx, courtType, from, to, includeStats)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, raw)
	return raw, nil
}

// Statistics returns tallies for the filter, from cache when fresh
func (s *Service) Statistics(ctx context.Context, f cldom.Filters) (json.RawMessage, error) {
	key := fmt.Sprintf("stats:%s:%s:%s", f.CourtType, ptime.FormatDate(f.DateFrom), ptime.FormatDate(f.DateTo))
	if raw, ok := s.cacheGet(ctx, key); ok {
		return raw, nil
	}
	st, err := s.reports.Statistics(ctx, f)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, raw)
	return raw, nil
}

// cacheGet is best effort. A cache fault degrades to a fresh build
func (s *Service) cacheGet(ctx context.Context, key string) (json.RawMessage, bool) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return nil, false
	}
	val, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("report cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return json.RawMessage(val), true
}

func (s *Service) cachePut(ctx context.Context, key string, raw []byte) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cfg.CacheTTL); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}
