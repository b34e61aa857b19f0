package models

import "github.com/google/uuid"

type Question struct {
	Base
	RoundID        uuid.UUID `json:"roundId" gorm:"type:uuid;not null"`
	QuestionNumber int       `json:"question_number" gorm:"not null"`
	CorrectAnswer  *string   `json:"correct_answer" gorm:"size:255"`
	AnsweredBy     *string   `json:"answered_by" gorm:"size:100"`
	BonusTo        *string   `json:"bonus_to" gorm:"size:100"`

	// Relationships
	Round Round `json:"round,omitempty"`
}
