package demographic

import (
	"context"

	"uxstudy/internal/storage"
	"uxstudy/pkg/requestcontext"
)

// Service validates demographic submissions and appends accepted ones to the
// section file.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Submit normalizes and validates the request, then persists one row. A
// rejected submission (underage, missing occupation) writes nothing.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (Record, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Record{}, err
	}

	record := Record{
		Timestamp:   requestcontext.Now(ctx).Format(storage.TimestampLayout),
		Name:        req.Name,
		Age:         req.Age,
		Occupation:  req.Occupation,
		Familiarity: req.Familiarity,
	}
	if err := s.store.Append(ctx, record, Target); err != nil {
		return Record{}, err
	}
	return record, nil
}
