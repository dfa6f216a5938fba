package api

import (
	"context"
	"net/http"
	"strings"
)

// List returns every pending scheduled post for the account.
func (s ScheduleService) List(ctx context.Context) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/schedule", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ScheduleEdit carries the mutable fields of a scheduled post. Empty fields
// are left unchanged server-side.
type ScheduleEdit struct {
	ScheduledDate string `json:"scheduled_date,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

// Edit reschedules a pending post.
func (s ScheduleService) Edit(ctx context.Context, jobID string, edit ScheduleEdit) (Result, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, NewMissingFieldError("job_id")
	}
	if edit.ScheduledDate == "" && edit.Timezone == "" {
		return nil, NewMissingFieldError("scheduled_date")
	}
	var result Result
	if err := s.do(ctx, http.MethodPut, "/uploadposts/schedule/"+jobID, edit, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel removes a pending scheduled post. Cancelling is idempotent only in
// the sense that a second cancel returns not found.
func (s ScheduleService) Cancel(ctx context.Context, jobID string) (Result, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, NewMissingFieldError("job_id")
	}
	var result Result
	if err := s.do(ctx, http.MethodDelete, "/uploadposts/schedule/"+jobID, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
