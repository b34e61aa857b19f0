package serializers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/models"
)

var (
	schoolReadFields   = []string{"id", "name", "state", "address"}
	schoolCreateFields = []string{"name", "state", "address", "id", "created_at", "updated_at"}
)

func School(s *models.School, ctx Context) gin.H {
	full := gin.H{
		"id":         s.ID,
		"name":       s.Name,
		"state":      s.State,
		"address":    s.Address,
		"created_at": FormatTime(s.CreatedAt),
		"updated_at": FormatTime(s.UpdatedAt),
	}

	if ctx.Depth > 0 || ctx.Method == http.MethodGet || ctx.Method == http.MethodPut {
		return pick(full, schoolReadFields)
	}
	return pick(full, schoolCreateFields)
}

func Schools(schools []models.School, ctx Context) []gin.H {
	out := make([]gin.H, 0, len(schools))
	for i := range schools {
		out = append(out, School(&schools[i], ctx))
	}
	return out
}
