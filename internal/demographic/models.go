// Package demographic captures the demographic questionnaire: respondent
// name (optional), age, occupation, and tool familiarity.
package demographic

import (
	"strconv"
	"strings"

	dErrors "uxstudy/pkg/domain-errors"
)

// Target is the demographic section's file. Only this package writes it.
const Target = "demographic_data.csv"

// Familiarity is the respondent's self-reported familiarity with similar
// tools. The values are persisted verbatim, so they stay in display form.
type Familiarity string

const (
	FamiliarityNot      Familiarity = "Not Familiar"
	FamiliaritySomewhat Familiarity = "Somewhat Familiar"
	FamiliarityVery     Familiarity = "Very Familiar"
)

func (f Familiarity) IsValid() bool {
	switch f {
	case FamiliarityNot, FamiliaritySomewhat, FamiliarityVery:
		return true
	}
	return false
}

// SubmitRequest is the demographic form payload.
type SubmitRequest struct {
	Name        string      `json:"name"`
	Age         int         `json:"age"`
	Occupation  string      `json:"occupation"`
	Familiarity Familiarity `json:"familiarity"`
}

func (r *SubmitRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Occupation = strings.TrimSpace(r.Occupation)
	r.Familiarity = Familiarity(strings.TrimSpace(string(r.Familiarity)))
}

// Follows validation order: Size -> Required -> Syntax -> Semantic.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.Name) > 100 {
		return dErrors.New(dErrors.CodeValidation, "name must be 100 characters or less")
	}
	if len(r.Occupation) > 100 {
		return dErrors.New(dErrors.CodeValidation, "occupation must be 100 characters or less")
	}

	if r.Occupation == "" {
		return dErrors.New(dErrors.CodeValidation, "please fill out the occupation field")
	}
	if r.Familiarity == "" {
		return dErrors.New(dErrors.CodeValidation, "familiarity is required")
	}

	if !r.Familiarity.IsValid() {
		return dErrors.New(dErrors.CodeValidation,
			"familiarity must be 'Not Familiar', 'Somewhat Familiar', or 'Very Familiar'")
	}

	if r.Age < 18 {
		return dErrors.New(dErrors.CodeValidation, "you must be 18 or older to fill this form out")
	}

	return nil
}

// Record is the persisted demographic row. Name may be empty; it is optional
// on the form.
type Record struct {
	Timestamp   string
	Name        string
	Age         int
	Occupation  string
	Familiarity Familiarity
}

func (r Record) Fields() []string {
	return []string{"timestamp", "name", "age", "occupation", "familiarity"}
}

func (r Record) Values() []string {
	return []string{r.Timestamp, r.Name, strconv.Itoa(r.Age), r.Occupation, string(r.Familiarity)}
}
