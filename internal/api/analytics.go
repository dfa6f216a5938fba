package api

import (
	"context"
	"net/url"
	"strings"
)

// ProfileAnalyticsOptions filters a profile analytics query.
type ProfileAnalyticsOptions struct {
	// Platforms limits the response to the named platforms. Empty means all
	// connected platforms.
	Platforms []Platform
	// PageID selects the Facebook page; Facebook analytics are unavailable
	// without it.
	PageID string
	// PageURN selects the LinkedIn organization page. Defaults server-side
	// to "me", the personal profile.
	PageURN string
}

// Profile fetches follower and engagement analytics for one managed profile.
func (s AnalyticsService) Profile(ctx context.Context, profile string, opts ProfileAnalyticsOptions) (Result, error) {
	if strings.TrimSpace(profile) == "" {
		return nil, NewMissingFieldError("profile")
	}
	query := url.Values{}
	if len(opts.Platforms) > 0 {
		query.Set("platforms", joinPlatforms(opts.Platforms))
	}
	if opts.PageID != "" {
		query.Set("page_id", opts.PageID)
	}
	if opts.PageURN != "" {
		query.Set("page_urn", opts.PageURN)
	}
	var result Result
	if err := s.get(ctx, "/analytics/"+url.PathEscape(profile), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ImpressionsOptions selects the window and shape of a total-impressions
// query. Period and the explicit date fields are mutually exclusive; the
// server resolves precedence when both are sent.
type ImpressionsOptions struct {
	Period    string // last_day, last_week, last_month, last_3months, last_year
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Date      string // YYYY-MM-DD, single day
	Platforms []Platform
	Breakdown bool     // include per-platform and per-day figures
	Metrics   []string // e.g. likes, comments, shares
}

// TotalImpressions aggregates impression counts for a profile from the
// vendor's daily snapshots.
func (s AnalyticsService) TotalImpressions(ctx context.Context, profile string, opts ImpressionsOptions) (Result, error) {
	if strings.TrimSpace(profile) == "" {
		return nil, NewMissingFieldError("profile")
	}
	query := url.Values{}
	if opts.Period != "" {
		query.Set("period", opts.Period)
	}
	if opts.StartDate != "" {
		query.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		query.Set("end_date", opts.EndDate)
	}
	if opts.Date != "" {
		query.Set("date", opts.Date)
	}
	if len(opts.Platforms) > 0 {
		query.Set("platform", joinPlatforms(opts.Platforms))
	}
	if opts.Breakdown {
		query.Set("breakdown", "true")
	}
	if len(opts.Metrics) > 0 {
		query.Set("metrics", strings.Join(opts.Metrics, ","))
	}
	var result Result
	if err := s.get(ctx, "/uploadposts/total-impressions/"+url.PathEscape(profile), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Post fetches analytics for one published post across every platform it
// reached, keyed by the upload's request_id.
func (s AnalyticsService) Post(ctx context.Context, requestID string) (Result, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, NewMissingFieldError("request_id")
	}
	var result Result
	if err := s.get(ctx, "/uploadposts/post-analytics/"+url.PathEscape(requestID), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PlatformMetrics returns the vendor's metrics catalog: which metrics each
// platform exposes and their display labels.
func (s AnalyticsService) PlatformMetrics(ctx context.Context) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/platform-metrics", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func joinPlatforms(platforms []Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}
