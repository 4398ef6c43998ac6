// Package task captures task runs: which task was attempted, whether it
// succeeded, how long it took, and any bug the respondent hit along the way.
package task

import (
	"strconv"
	"strings"

	dErrors "uxstudy/pkg/domain-errors"
)

// Target is the task section's file. Only this package writes it.
const Target = "task_data.csv"

// Success is the respondent's completion verdict.
type Success string

const (
	SuccessYes     Success = "Yes"
	SuccessNo      Success = "No"
	SuccessPartial Success = "Partial"
)

func (s Success) IsValid() bool {
	switch s {
	case SuccessYes, SuccessNo, SuccessPartial:
		return true
	}
	return false
}

// BugReport carries the optional bug sub-fields. They are persisted only when
// the respondent flagged a bug; otherwise the columns stay empty.
type BugReport struct {
	Traceback   string `json:"traceback"`
	Description string `json:"description"`
	Impact      int    `json:"impact"`
}

// SubmitRequest is the task result payload. SessionID references a timer
// session created via the timer endpoints; it is optional, and submissions
// without one persist an empty duration.
type SubmitRequest struct {
	TaskName  string     `json:"task_name"`
	Success   Success    `json:"success"`
	SessionID string     `json:"session_id,omitempty"`
	BugReport *BugReport `json:"bug_report,omitempty"`
	Notes     string     `json:"notes"`
}

func (r *SubmitRequest) Normalize() {
	if r == nil {
		return
	}
	r.TaskName = strings.TrimSpace(r.TaskName)
	r.SessionID = strings.TrimSpace(r.SessionID)
	r.Notes = strings.TrimSpace(r.Notes)
	if r.BugReport != nil {
		r.BugReport.Traceback = strings.TrimSpace(r.BugReport.Traceback)
		r.BugReport.Description = strings.TrimSpace(r.BugReport.Description)
	}
}

// Follows validation order: Size -> Required -> Syntax -> Semantic. Aside
// from the bug impact scale this section is deliberately permissive; the
// observer decides what counts as a task.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.TaskName) > 200 {
		return dErrors.New(dErrors.CodeValidation, "task_name must be 200 characters or less")
	}
	if len(r.Notes) > 2000 {
		return dErrors.New(dErrors.CodeValidation, "notes must be 2000 characters or less")
	}
	if r.BugReport != nil && len(r.BugReport.Description) > 2000 {
		return dErrors.New(dErrors.CodeValidation, "bug description must be 2000 characters or less")
	}

	if r.TaskName == "" {
		return dErrors.New(dErrors.CodeValidation, "task_name is required")
	}
	if r.Success == "" {
		return dErrors.New(dErrors.CodeValidation, "success is required")
	}

	if !r.Success.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "success must be 'Yes', 'No', or 'Partial'")
	}

	if r.BugReport != nil && (r.BugReport.Impact < 1 || r.BugReport.Impact > 5) {
		return dErrors.New(dErrors.CodeValidation, "bug impact must be between 1 and 5")
	}

	return nil
}

// Record is the persisted task row. DurationSeconds, Bug, BugDescription, and
// BugImpact are pre-rendered strings so absent values persist as empty cells.
type Record struct {
	Timestamp       string
	TaskName        string
	Success         Success
	DurationSeconds string
	Bug             string
	BugDescription  string
	BugImpact       string
	Notes           string
}

func (r Record) Fields() []string {
	return []string{"timestamp", "task_name", "success", "duration_seconds",
		"bug", "bug_description", "bug_impact", "notes"}
}

func (r Record) Values() []string {
	return []string{r.Timestamp, r.TaskName, string(r.Success), r.DurationSeconds,
		r.Bug, r.BugDescription, r.BugImpact, r.Notes}
}

// FormatDuration renders elapsed seconds the way the duration column stores
// them.
func FormatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64)
}
