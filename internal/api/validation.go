package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"fitclub/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field" example:"room_name"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"room_name is required"`
}

type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"validation failed"`
	Code    string            `json:"code" example:"invalid_input"`
	Details []ValidationError `json:"details"`
}

// UseJSONFieldNames makes gin's validator report fields by their json tag.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// BindError reports a request body that failed to bind. Field validation
// failures are listed one per field.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(c, err.Error())
		return
	}

	details := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "validation failed",
		Code:    apperror.Code(apperror.ErrInvalidInput),
		Details: details,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		}
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fe.Field() + " must be at most " + fe.Param() + " characters"
		}
		return fe.Field() + " must be at most " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
