package serializers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

var (
	registrationReadFields = []string{"id", "quizId", "schoolId", "quiz", "school"}
	registrationCreateFields = []string{
		"id", "quizId", "schoolId", "quiz", "school", "created_at", "updated_at",
	}
)

// Registration projects a school's enrollment in a quiz. The nested quiz
// carries its round list until the registration itself is embedded, at
// which point the quiz renders stripped.
func Registration(r *models.SchoolRegistration, ctx Context) gin.H {
	full := gin.H{
		"id":         r.ID,
		"quizId":     r.QuizID,
		"schoolId":   r.SchoolID,
		"quiz":       Quiz(&r.Quiz, ctx.child()),
		"school":     School(&r.School, ctx.child()),
		"created_at": FormatTime(r.CreatedAt),
		"updated_at": FormatTime(r.UpdatedAt),
	}

	if ctx.Depth == 0 && ctx.Method == http.MethodPost {
		return pick(full, registrationCreateFields)
	}
	return pick(full, registrationReadFields)
}

func Registrations(regs []models.SchoolRegistration, ctx Context) []gin.H {
	out := make([]gin.H, 0, len(regs))
	for i := range regs {
		out = append(out, Registration(&regs[i], ctx))
	}
	return out
}
