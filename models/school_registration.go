package models

import "github.com/google/uuid"

// SchoolRegistration enrolls a school in a quiz. A (quiz, school) pair
// registers at most once; the application checks first and the composite
// index is the final authority under races.
type SchoolRegistration struct {
	Base
	QuizID   uuid.UUID `json:"quizId" gorm:"type:uuid;not null;uniqueIndex:idx_quiz_school"`
	SchoolID uuid.UUID `json:"schoolId" gorm:"type:uuid;not null;uniqueIndex:idx_quiz_school"`

	// Relationships
	Quiz   Quiz   `json:"quiz,omitempty"`
	School School `json:"school,omitempty"`
}
