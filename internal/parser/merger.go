package parser

import (
	"github.com/phishreport/phishreport/internal/models"
)

// MergeStats counts what the merge added to the capture log.
type MergeStats struct {
	Backfilled  int
	Synthesized int
}

// MergeReport combines captures, the lure roster and the identity
// supplement into report rows. See MergeReportWithStats.
func MergeReport(events []models.CaptureEvent, targets *models.Targets, identities *models.Identities) []models.ReportRow {
	rows, _ := MergeReportWithStats(events, targets, identities)
	return rows
}

// MergeReportWithStats builds the report rows in two passes:
//  1. Captures without a username take the recipient of the first roster URL
//     their URL contains.
//  2. Every supplement identity whose email is not yet in the report gets a
//     "No attempt logged" row, appended after all captures.
//
// The inputs are not modified.
func MergeReportWithStats(events []models.CaptureEvent, targets *models.Targets, identities *models.Identities) ([]models.ReportRow, MergeStats) {
	var stats MergeStats
	rows := make([]models.ReportRow, 0, len(events)+identities.Len())
	seen := make(map[string]struct{}, len(events)+identities.Len())

	for _, event := range events {
		row := event.Row()
		if row.Email == "" {
			if email, ok := targets.Match(row.URL); ok {
				row.Email = email
				stats.Backfilled++
			}
		}
		rows = append(rows, row)
		seen[row.Email] = struct{}{}
	}

	for _, identity := range identities.List() {
		if _, ok := seen[identity.Email]; ok {
			continue
		}
		rows = append(rows, models.NoAttemptRow(identity.Email))
		seen[identity.Email] = struct{}{}
		stats.Synthesized++
	}

	return rows, stats
}
