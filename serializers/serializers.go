// Package serializers shapes stored entities into the field set
// appropriate for a response. Every projection is an explicit allow-list
// keyed by HTTP method and embedding depth; new model fields stay hidden
// until a list names them.
package serializers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Context carries what a projection is allowed to depend on.
type Context struct {
	Method string
	Depth  int
}

// MaxEmbedDepth bounds nested-object expansion. An entity embedded past
// this depth renders its stripped form with no collections attached.
const MaxEmbedDepth = 1

func (c Context) child() Context {
	return Context{Method: c.Method, Depth: c.Depth + 1}
}

// FormatTime renders timestamps as YYYY-MM-DDTHH:MM:SS.ffffffZ.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}

func pick(full gin.H, fields []string) gin.H {
	out := gin.H{}
	for _, f := range fields {
		if v, ok := full[f]; ok {
			out[f] = v
		}
	}
	return out
}
