package coverage

import (
	"fmt"
	"time"

	"github.com/faena-hq/faena/internal/domain/roster"
)

// Severity grades a coverage alert.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityDanger  Severity = "DANGER"
)

const (
	// dangerThreshold: strictly below this the shift is considered
	// critically understaffed.
	dangerThreshold = 80.0
	// fullCoverage: at or above this no alert is raised.
	fullCoverage = 100.0
)

// Alert is a panel warning about an understaffed active cycle.
type Alert struct {
	CycleID    uint
	Letter     string
	Shift      roster.ShiftSchedule
	Severity   Severity
	Percentage float64
	Message    string
}

// BuildAlerts raises one alert per understaffed cycle that is active on the
// given date. Cycles outside their date range, cycles with no requirements
// and cycles at or over 100% coverage produce nothing. Exactly 80% is a
// WARNING, not DANGER; exactly 100% is silent.
func BuildAlerts(cycles []*roster.Cycle, reports map[uint]*Report, today time.Time) []Alert {
	var alerts []Alert
	for _, cycle := range cycles {
		if !cycle.ContainsDate(today) {
			continue
		}
		report, ok := reports[cycle.ID()]
		if !ok || report.Percentage == nil {
			continue
		}
		pct := *report.Percentage
		if pct >= fullCoverage {
			continue
		}

		severity := SeverityWarning
		if pct < dangerThreshold {
			severity = SeverityDanger
		}

		alerts = append(alerts, Alert{
			CycleID:    cycle.ID(),
			Letter:     cycle.Letter(),
			Shift:      cycle.Shift(),
			Severity:   severity,
			Percentage: pct,
			Message: fmt.Sprintf("Turno %s: cobertura %.1f%% (%d/%d)",
				cycle.Letter(), pct, report.TotalAssigned, report.TotalRequired),
		})
	}
	return alerts
}
