package consent

import (
	"context"

	"uxstudy/internal/storage"
	"uxstudy/pkg/requestcontext"
)

// Service validates consent submissions and appends accepted ones to the
// section file. It keeps orchestration out of handlers and domain logic thin.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Submit validates the request and persists one consent row. Validation
// failures return before anything is written.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return Record{}, err
	}

	record := Record{
		Timestamp:    requestcontext.Now(ctx).Format(storage.TimestampLayout),
		ConsentGiven: req.ConsentGiven,
	}
	if err := s.store.Append(ctx, record, Target); err != nil {
		return Record{}, err
	}
	return record, nil
}
