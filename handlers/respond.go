package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ok sends the success envelope.
func ok(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// fail translates an error into the flat error envelope. Errors without an
// apperror category fall back to the generic failure message.
func fail(c *gin.Context, err error) {
	logger.Debug().Err(err).Str("path", c.FullPath()).Msg("request failed")

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.Status(appErr), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": models.FailureResponse})
}

// bindingMessage turns a binding failure into the message echoed back to the
// caller, naming the first offending field and rule.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%q fails the %q requirement", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err.Error()
}
