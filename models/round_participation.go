package models

import "github.com/google/uuid"

// RoundParticipation enrolls a registered school in a specific round.
// Creation resolves the school's registration for the round's quiz; the
// participation keeps that registration id and is not re-checked if the
// registration is later deleted.
type RoundParticipation struct {
	Base
	RoundID              uuid.UUID `json:"roundId" gorm:"type:uuid;not null"`
	SchoolRegistrationID uuid.UUID `json:"schoolRegistrationId" gorm:"type:uuid;not null"`

	// Relationships
	Round              Round              `json:"round,omitempty"`
	SchoolRegistration SchoolRegistration `json:"schoolRegistration,omitempty"`
}
