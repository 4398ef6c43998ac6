// Package exitpoll captures the exit questionnaire: overall satisfaction and
// difficulty on a 1-5 scale plus free-text feedback.
package exitpoll

import (
	"strconv"
	"strings"

	dErrors "uxstudy/pkg/domain-errors"
)

// Target is the exit section's file. Only this package writes it.
const Target = "exit_data.csv"

// defaultRating is the scale midpoint, applied when a slider value is
// omitted.
const defaultRating = 3

// SubmitRequest is the exit form payload. Satisfaction and difficulty are
// pointers so an omitted value can be told apart from an explicit zero: the
// former defaults to 3, the latter is rejected.
type SubmitRequest struct {
	Satisfaction *int   `json:"satisfaction"`
	Difficulty   *int   `json:"difficulty"`
	OpenFeedback string `json:"open_feedback"`
}

func (r *SubmitRequest) Normalize() {
	if r == nil {
		return
	}
	r.OpenFeedback = strings.TrimSpace(r.OpenFeedback)
}

// Follows validation order: Size -> Required -> Syntax -> Semantic.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.OpenFeedback) > 2000 {
		return dErrors.New(dErrors.CodeValidation, "open_feedback must be 2000 characters or less")
	}

	if r.Satisfaction != nil && (*r.Satisfaction < 1 || *r.Satisfaction > 5) {
		return dErrors.New(dErrors.CodeValidation, "satisfaction must be between 1 and 5")
	}
	if r.Difficulty != nil && (*r.Difficulty < 1 || *r.Difficulty > 5) {
		return dErrors.New(dErrors.CodeValidation, "difficulty must be between 1 and 5")
	}

	return nil
}

// SatisfactionOrDefault resolves the submitted value, falling back to the
// scale midpoint.
func (r *SubmitRequest) SatisfactionOrDefault() int {
	if r.Satisfaction == nil {
		return defaultRating
	}
	return *r.Satisfaction
}

// DifficultyOrDefault resolves the submitted value, falling back to the
// scale midpoint.
func (r *SubmitRequest) DifficultyOrDefault() int {
	if r.Difficulty == nil {
		return defaultRating
	}
	return *r.Difficulty
}

// Record is the persisted exit row.
type Record struct {
	Timestamp    string
	Satisfaction int
	Difficulty   int
	OpenFeedback string
}

func (r Record) Fields() []string {
	return []string{"timestamp", "satisfaction", "difficulty", "open_feedback"}
}

func (r Record) Values() []string {
	return []string{r.Timestamp, strconv.Itoa(r.Satisfaction), strconv.Itoa(r.Difficulty), r.OpenFeedback}
}
