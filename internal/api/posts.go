package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Status reports the processing state of an asynchronous upload by its
// request_id.
func (s PostsService) Status(ctx context.Context, requestID string) (Result, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, NewMissingFieldError("request_id")
	}
	query := url.Values{"request_id": {requestID}}
	var result Result
	if err := s.get(ctx, "/uploadposts/status", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// HistoryOptions selects a page of upload history. Zero values fall back to
// the server defaults (page 1, 10 entries).
type HistoryOptions struct {
	Page  int
	Limit int
}

// History lists past uploads, newest first.
func (s PostsService) History(ctx context.Context, opts HistoryOptions) (Result, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	var result Result
	if err := s.get(ctx, "/uploadposts/history", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}
