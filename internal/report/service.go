// Package report re-reads the section files and aggregates them into the
// usability report. It only ever reads; the section packages own the writes.
package report

import (
	"context"
	"fmt"
	"strconv"

	"uxstudy/internal/consent"
	"uxstudy/internal/demographic"
	"uxstudy/internal/exitpoll"
	"uxstudy/internal/storage"
	"uxstudy/internal/task"
)

// Section is one table rendered for the report.
type Section struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Empty   bool       `json:"empty"`
}

// Averages holds the exit questionnaire means, pre-formatted to two decimals.
type Averages struct {
	Satisfaction string `json:"satisfaction"`
	Difficulty   string `json:"difficulty"`
}

// Report aggregates all four sections. ExitAverages is present only when the
// exit section has parseable ratings.
type Report struct {
	Consent      Section   `json:"consent"`
	Demographic  Section   `json:"demographic"`
	Task         Section   `json:"task"`
	Exit         Section   `json:"exit"`
	ExitAverages *Averages `json:"exit_averages,omitempty"`
}

// Service builds reports from the row store.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Build loads every section file in full and computes the exit means. Load
// errors abort the report; a missing file is simply an empty section.
func (s *Service) Build(ctx context.Context) (Report, error) {
	var rpt Report

	consentTable, err := s.store.Load(ctx, consent.Target)
	if err != nil {
		return Report{}, err
	}
	rpt.Consent = toSection(consentTable)

	demographicTable, err := s.store.Load(ctx, demographic.Target)
	if err != nil {
		return Report{}, err
	}
	rpt.Demographic = toSection(demographicTable)

	taskTable, err := s.store.Load(ctx, task.Target)
	if err != nil {
		return Report{}, err
	}
	rpt.Task = toSection(taskTable)

	exitTable, err := s.store.Load(ctx, exitpoll.Target)
	if err != nil {
		return Report{}, err
	}
	rpt.Exit = toSection(exitTable)
	rpt.ExitAverages = exitAverages(exitTable)

	return rpt, nil
}

func toSection(t storage.Table) Section {
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	return Section{Columns: columns, Rows: rows, Empty: t.Empty()}
}

// exitAverages computes the satisfaction and difficulty means. Cells that do
// not parse as numbers are skipped, which tolerates rows written before the
// append-time schema check existed.
func exitAverages(t storage.Table) *Averages {
	if t.Empty() {
		return nil
	}
	satisfaction, okSat := columnMean(t, "satisfaction")
	difficulty, okDiff := columnMean(t, "difficulty")
	if !okSat || !okDiff {
		return nil
	}
	return &Averages{
		Satisfaction: fmt.Sprintf("%.2f", satisfaction),
		Difficulty:   fmt.Sprintf("%.2f", difficulty),
	}
}

func columnMean(t storage.Table, name string) (float64, bool) {
	values, ok := t.Column(name)
	if !ok {
		return 0, false
	}
	var sum float64
	var n int
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
