package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sigmaquiz/apierror"
)

func init() {
	// Validation errors must report json field names, not Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ErrorEnvelope renders every error attached to the context as the uniform
// {message, error, statusCode} body. It is the single exit path for error
// responses; handlers attach errors and return without writing.
func ErrorEnvelope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		apiErr := apierror.From(c.Errors[0].Err)
		c.JSON(apiErr.Status, gin.H{
			"message":    apiErr.Message,
			"error":      apiErr.Code,
			"statusCode": apiErr.Status,
		})
	}
}
