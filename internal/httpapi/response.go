package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// bindAndValidate binds the JSON body into out and runs schema validation.
// Malformed JSON is a 400; failed field rules are a 422 with a field map.
// A non-nil error means the response has already been written.
func bindAndValidate(c *gin.Context, out any, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation_failed",
			"fields": validationErrorsToMap(err),
		})
		return err
	}

	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = "failed on rule: " + fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

// fieldError writes a 422 with a single field message, used for rules that
// only the service layer can check (product existence, price range).
func fieldError(c *gin.Context, field, msg string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation_failed",
		"fields": map[string]string{field: msg},
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}
