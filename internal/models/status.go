package models

// ServerStatus is the outcome of the health probe
type ServerStatus string

const (
	StatusRunning ServerStatus = "Running"
	StatusStopped ServerStatus = "Stopped"
)

// Outcome describes what an update run did to the target document
type Outcome string

const (
	OutcomeUpdated         Outcome = "updated"
	OutcomeUnchanged       Outcome = "unchanged"
	OutcomeSectionNotFound Outcome = "section-not-found"
	OutcomeDryRun          Outcome = "dry-run"
)
