package domain

import "time"

// ReportStatus enumerates triage states for content reports.
type ReportStatus string

const (
	ReportStatusNew        ReportStatus = "nouveau"
	ReportStatusInProgress ReportStatus = "en cours de traitement"
	ReportStatusResolved   ReportStatus = "résolu"
)

// ReportContentType identifies what kind of content a report points at.
type ReportContentType string

const (
	ReportContentListing ReportContentType = "annonce"
	ReportContentUser    ReportContentType = "utilisateur"
	ReportContentMessage ReportContentType = "message"
)

var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportStatusNew:        {ReportStatusInProgress, ReportStatusResolved},
	ReportStatusInProgress: {ReportStatusResolved},
	ReportStatusResolved:   {},
}

// CanTransitionReport reports whether a triage status change is legal.
// Resolution is terminal by convention; re-resolving is tolerated as a no-op
// at the service layer.
func CanTransitionReport(current, next ReportStatus) bool {
	for _, candidate := range reportTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Report is a flag raised against a listing, user or message. The referenced
// content may have been deleted independently; resolution of the reference is
// expected to tolerate that.
type Report struct {
	ID              string
	ContentType     ReportContentType
	ContentID       string
	Reason          string
	Details         string
	ReportedByEmail string
	Status          ReportStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
