package serializers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

var (
	participationReadFields  = []string{"id", "roundId", "schoolRegistrationId", "schoolRegistration"}
	participationEmbedFields = []string{"id", "roundId", "schoolRegistrationId"}
	participationCreateFields = []string{
		"id", "roundId", "schoolRegistrationId", "schoolRegistration",
		"school_id", "created_at", "updated_at",
	}
)

// Participation projects a school's enrollment in a round. The nested
// registration is attached only at the top level; inside a round detail
// the participation stays flat. Creation acknowledgements surface the
// otherwise write-only school_id.
func Participation(p *models.RoundParticipation, ctx Context) gin.H {
	full := gin.H{
		"id":                   p.ID,
		"roundId":              p.RoundID,
		"schoolRegistrationId": p.SchoolRegistrationID,
		"created_at":           FormatTime(p.CreatedAt),
		"updated_at":           FormatTime(p.UpdatedAt),
	}

	if ctx.Depth > 0 {
		return pick(full, participationEmbedFields)
	}

	full["schoolRegistration"] = Registration(&p.SchoolRegistration, ctx.child())
	if ctx.Method == http.MethodPost {
		full["school_id"] = p.SchoolRegistration.SchoolID
		return pick(full, participationCreateFields)
	}
	return pick(full, participationReadFields)
}

func Participations(parts []models.RoundParticipation, ctx Context) []gin.H {
	out := make([]gin.H, 0, len(parts))
	for i := range parts {
		out = append(out, Participation(&parts[i], ctx))
	}
	return out
}
