package models

import "github.com/google/uuid"

// Round is a scored subdivision of a quiz. (quiz, round_number) is unique.
type Round struct {
	Base
	QuizID                uuid.UUID `json:"quizId" gorm:"type:uuid;not null;uniqueIndex:idx_quiz_round_number"`
	Name                  string    `json:"name" gorm:"size:100;not null"`
	RoundNumber           int       `json:"round_number" gorm:"not null;uniqueIndex:idx_quiz_round_number"`
	NoOfQuestions         int       `json:"no_of_questions" gorm:"not null"`
	NoOfSchools           int       `json:"no_of_schools" gorm:"not null"`
	MarksPerQuestion      int       `json:"marks_per_question" gorm:"not null"`
	MarksPerBonusQuestion int       `json:"marks_per_bonus_question" gorm:"not null"`

	// Relationships
	Quiz           Quiz                 `json:"quiz,omitempty"`
	Questions      []Question           `json:"questions,omitempty" gorm:"foreignKey:RoundID"`
	Participations []RoundParticipation `json:"participations,omitempty" gorm:"foreignKey:RoundID"`
}
