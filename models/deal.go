package models

import "time"

// DealStage is the pipeline stage of a deal.
type DealStage string

const (
	StageLead      DealStage = "lead"
	StageQualified DealStage = "qualified"
	StageProposal  DealStage = "proposal"
	StageWon       DealStage = "won"
	StageLost      DealStage = "lost"
)

// DealStages lists all valid pipeline stages in pipeline order.
var DealStages = []DealStage{StageLead, StageQualified, StageProposal, StageWon, StageLost}

// ValidStage reports whether s is one of the known pipeline stages.
func ValidStage(s DealStage) bool {
	for _, stage := range DealStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Deal represents a sales opportunity attached to a contact.
type Deal struct {
	// ID is the client-generated UUID of the deal.
	ID string `json:"id"`

	// ContactID references the owning contact.
	ContactID string `json:"contact_id"`

	// Title is a short human-readable description of the deal. Required.
	Title string `json:"title"`

	// Stage is the current pipeline stage.
	Stage DealStage `json:"stage"`

	// AmountCents is the deal value in minor currency units.
	AmountCents int64 `json:"amount_cents"`

	// Currency is the ISO 4217 code of the deal value (e.g. "USD").
	Currency string `json:"currency"`

	// CloseDate is the expected close date. Zero means not set.
	CloseDate time.Time `json:"close_date,omitempty"`

	// CreatedAt is set by the client when the record is first created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped by the client on every edit.
	UpdatedAt time.Time `json:"updated_at"`
}
