package models

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
)

const (
	RoleAdhoc      = "adhoc"
	RoleQuizMaster = "quiz-master"
	RoleSuperAdmin = "super-admin"
)

// MinPasswordLength is the shortest password accepted anywhere.
const MinPasswordLength = 8

type User struct {
	Base
	FirstName string         `json:"first_name" gorm:"size:100;not null"`
	LastName  string         `json:"last_name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Roles     pq.StringArray `json:"roles" gorm:"type:text[]"`
}

// DefaultRoles is the role set assigned when a user is created without one.
func DefaultRoles() pq.StringArray {
	return pq.StringArray{RoleAdhoc}
}

// BeforeCreate assigns the id and, when no role was given, the default
// role set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if len(u.Roles) == 0 {
		u.Roles = DefaultRoles()
	}
	return nil
}

// ValidateRoles checks that roles is a non-empty list of known role tags.
func ValidateRoles(roles []string) error {
	if len(roles) == 0 {
		return apierror.BadRequest("Roles must be a non-empty list.")
	}

	valid := map[string]bool{
		RoleAdhoc:      true,
		RoleQuizMaster: true,
		RoleSuperAdmin: true,
	}

	var invalid []string
	for _, role := range roles {
		if !valid[role] {
			invalid = append(invalid, role)
		}
	}
	if len(invalid) > 0 {
		return apierror.BadRequest(fmt.Sprintf(
			"Invalid role(s): %s. Allowed roles: %s, %s, %s.",
			strings.Join(invalid, ", "), RoleQuizMaster, RoleAdhoc, RoleSuperAdmin,
		))
	}
	return nil
}

// HasRole reports whether the user's role set contains role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
