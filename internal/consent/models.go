// Package consent captures the consent form: a single agreement checkbox
// whose acceptance time is persisted before any other section is answered.
package consent

import (
	"strconv"

	dErrors "uxstudy/pkg/domain-errors"
)

// Target is the consent section's file. Only this package writes it.
const Target = "consent_data.csv"

// SubmitRequest is the consent form payload.
type SubmitRequest struct {
	ConsentGiven bool `json:"consent_given"`
}

// Validate rejects submissions without agreement. A refused consent is never
// persisted.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if !r.ConsentGiven {
		return dErrors.New(dErrors.CodeValidation, "you must agree to the consent terms before proceeding")
	}
	return nil
}

// Record is the persisted consent row.
type Record struct {
	Timestamp    string
	ConsentGiven bool
}

func (r Record) Fields() []string {
	return []string{"timestamp", "consent_given"}
}

func (r Record) Values() []string {
	return []string{r.Timestamp, strconv.FormatBool(r.ConsentGiven)}
}
