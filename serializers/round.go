package serializers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

var (
	roundSummaryFields = []string{
		"id", "quizId", "name", "round_number", "no_of_questions",
		"no_of_schools", "marks_per_question", "marks_per_bonus_question",
	}
	roundDetailFields = []string{
		"id", "quizId", "name", "round_number", "no_of_questions",
		"no_of_schools", "marks_per_question", "marks_per_bonus_question",
		"schoolParticipations", "questions",
	}
	roundCreateFields = []string{
		"quizId", "name", "round_number", "no_of_questions", "no_of_schools",
		"marks_per_question", "marks_per_bonus_question", "quiz",
		"id", "created_at", "updated_at",
	}
)

// Round projects a round in its bare summary shape, the form used inside
// round listings and embedded quizzes.
func Round(r *models.Round, ctx Context) gin.H {
	return pick(roundFull(r), roundSummaryFields)
}

// QuizRound projects a round in its detail shape: reads attach the
// participation and question collections, update acknowledgements fall
// back to the summary, and creation acknowledgements attach the owning
// quiz plus timestamps but no collections.
func QuizRound(r *models.Round, ctx Context) gin.H {
	full := roundFull(r)

	switch ctx.Method {
	case http.MethodGet:
		participations := make([]gin.H, 0, len(r.Participations))
		for i := range r.Participations {
			participations = append(participations, Participation(&r.Participations[i], ctx.child()))
		}
		questions := make([]gin.H, 0, len(r.Questions))
		for i := range r.Questions {
			questions = append(questions, Question(&r.Questions[i]))
		}
		full["schoolParticipations"] = participations
		full["questions"] = questions
		return pick(full, roundDetailFields)
	case http.MethodPut:
		return pick(full, roundSummaryFields)
	default:
		full["quiz"] = pick(gin.H{
			"id":          r.Quiz.ID,
			"year":        r.Quiz.Year(),
			"title":       r.Quiz.Title,
			"description": r.Quiz.Description,
			"date":        r.Quiz.Date,
		}, quizReadFields)
		return pick(full, roundCreateFields)
	}
}

func Rounds(rounds []models.Round, ctx Context) []gin.H {
	out := make([]gin.H, 0, len(rounds))
	for i := range rounds {
		out = append(out, Round(&rounds[i], ctx))
	}
	return out
}

func Question(q *models.Question) gin.H {
	return gin.H{
		"id":              q.ID,
		"roundId":         q.RoundID,
		"question_number": q.QuestionNumber,
		"correct_answer":  q.CorrectAnswer,
		"answered_by":     q.AnsweredBy,
		"bonus_to":        q.BonusTo,
	}
}

func roundFull(r *models.Round) gin.H {
	return gin.H{
		"id":                       r.ID,
		"quizId":                   r.QuizID,
		"name":                     r.Name,
		"round_number":             r.RoundNumber,
		"no_of_questions":          r.NoOfQuestions,
		"no_of_schools":            r.NoOfSchools,
		"marks_per_question":       r.MarksPerQuestion,
		"marks_per_bonus_question": r.MarksPerBonusQuestion,
		"created_at":               FormatTime(r.CreatedAt),
		"updated_at":               FormatTime(r.UpdatedAt),
	}
}
