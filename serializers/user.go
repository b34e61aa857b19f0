package serializers

import (
	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

// User projects a user account. The password credential is write-only and
// never appears in any shape.
func User(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"roles":      []string(u.Roles),
		"created_at": FormatTime(u.CreatedAt),
		"updated_at": FormatTime(u.UpdatedAt),
	}
}

func Users(users []models.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, User(&users[i]))
	}
	return out
}
