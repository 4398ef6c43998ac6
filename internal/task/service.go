package task

import (
	"context"
	"strconv"

	"uxstudy/internal/storage"
	"uxstudy/pkg/requestcontext"
)

// Service validates task results, resolves timer sessions into durations,
// and appends accepted rows to the section file.
type Service struct {
	store    storage.Store
	sessions *InMemorySessionStore
}

func NewService(store storage.Store, sessions *InMemorySessionStore) *Service {
	return &Service{store: store, sessions: sessions}
}

// StartTimer creates a fresh timer session.
func (s *Service) StartTimer(ctx context.Context) TimerSession {
	return s.sessions.Start(requestcontext.Now(ctx))
}

// StopTimer stops the named session and returns it with the stop time set.
func (s *Service) StopTimer(ctx context.Context, id string) (TimerSession, error) {
	return s.sessions.Stop(id, requestcontext.Now(ctx))
}

// Submit validates the request and persists one task row. A referenced timer
// session must exist; it contributes the duration when it was stopped and is
// cleared only after the row is written. Validation or append failures leave
// the session intact so the respondent can resubmit.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (Record, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Record{}, err
	}

	duration := ""
	if req.SessionID != "" {
		session, err := s.sessions.Get(req.SessionID)
		if err != nil {
			return Record{}, err
		}
		if seconds, stopped := session.Elapsed(); stopped {
			duration = FormatDuration(seconds)
		}
	}

	record := Record{
		Timestamp:       requestcontext.Now(ctx).Format(storage.TimestampLayout),
		TaskName:        req.TaskName,
		Success:         req.Success,
		DurationSeconds: duration,
		Notes:           req.Notes,
	}
	if req.BugReport != nil {
		record.Bug = req.BugReport.Traceback
		record.BugDescription = req.BugReport.Description
		record.BugImpact = strconv.Itoa(req.BugReport.Impact)
	}

	if err := s.store.Append(ctx, record, Target); err != nil {
		return Record{}, err
	}
	if req.SessionID != "" {
		s.sessions.Clear(req.SessionID)
	}
	return record, nil
}
