package models

type Quiz struct {
	Base
	Title       string  `json:"title" gorm:"size:100;not null"`
	Description *string `json:"description" gorm:"size:255"`
	Date        string  `json:"date" gorm:"size:10;uniqueIndex;not null"` // YYYY-MM-DD

	// Relationships
	Rounds        []Round              `json:"rounds,omitempty" gorm:"foreignKey:QuizID"`
	Registrations []SchoolRegistration `json:"registrations,omitempty" gorm:"foreignKey:QuizID"`
}

// Year is derived from the date, never stored.
func (q *Quiz) Year() string {
	if len(q.Date) < 4 {
		return ""
	}
	return q.Date[:4]
}
