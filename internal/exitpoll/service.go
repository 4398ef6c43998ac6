package exitpoll

import (
	"context"

	"uxstudy/internal/storage"
	"uxstudy/pkg/requestcontext"
)

// Service validates exit questionnaire submissions and appends accepted ones
// to the section file.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Submit validates the request and persists one exit row, applying the scale
// midpoint for omitted ratings.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (Record, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Record{}, err
	}

	record := Record{
		Timestamp:    requestcontext.Now(ctx).Format(storage.TimestampLayout),
		Satisfaction: req.SatisfactionOrDefault(),
		Difficulty:   req.DifficultyOrDefault(),
		OpenFeedback: req.OpenFeedback,
	}
	if err := s.store.Append(ctx, record, Target); err != nil {
		return Record{}, err
	}
	return record, nil
}
