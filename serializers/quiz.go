package serializers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

var (
	quizReadFields   = []string{"id", "year", "title", "description", "date"}
	quizCreateFields = []string{"year", "title", "description", "date", "id", "created_at", "updated_at"}
	quizEmbedFields  = []string{"id", "year", "title", "description", "date", "rounds"}
)

// Quiz projects a quiz. Reads and update acknowledgements expose the bare
// summary; creation acknowledgements include timestamps. An embedded quiz
// carries its round list unless it sits past MaxEmbedDepth.
func Quiz(q *models.Quiz, ctx Context) gin.H {
	full := gin.H{
		"id":          q.ID,
		"year":        q.Year(),
		"title":       q.Title,
		"description": q.Description,
		"date":        q.Date,
		"created_at":  FormatTime(q.CreatedAt),
		"updated_at":  FormatTime(q.UpdatedAt),
	}

	if ctx.Depth > 0 {
		if ctx.Depth > MaxEmbedDepth {
			return pick(full, quizReadFields)
		}
		rounds := make([]gin.H, 0, len(q.Rounds))
		for i := range q.Rounds {
			rounds = append(rounds, Round(&q.Rounds[i], ctx.child()))
		}
		full["rounds"] = rounds
		return pick(full, quizEmbedFields)
	}

	if ctx.Method == http.MethodGet || ctx.Method == http.MethodPut {
		return pick(full, quizReadFields)
	}
	return pick(full, quizCreateFields)
}

// Quizzes projects a quiz list with the caller's context.
func Quizzes(quizzes []models.Quiz, ctx Context) []gin.H {
	out := make([]gin.H, 0, len(quizzes))
	for i := range quizzes {
		out = append(out, Quiz(&quizzes[i], ctx))
	}
	return out
}
