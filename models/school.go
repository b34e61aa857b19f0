package models

type School struct {
	Base
	Name    string  `json:"name" gorm:"size:100;not null"`
	State   string  `json:"state" gorm:"size:100;not null"`
	Address *string `json:"address" gorm:"size:255"`

	// Relationships
	Registrations []SchoolRegistration `json:"registrations,omitempty" gorm:"foreignKey:SchoolID"`
}
