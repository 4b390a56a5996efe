package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trading-journal/pkg/response"
)

var hhmmRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// report issue paths by json/form name, not Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
}

// bindingIssues converts a gin binding error into field-level issues
func bindingIssues(err error) []response.Issue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]response.Issue, len(verrs))
		for i, fe := range verrs {
			issues[i] = response.Issue{Path: fe.Field(), Message: issueMessage(fe)}
		}
		return issues
	}
	return []response.Issue{{Path: "", Message: err.Error()}}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "datetime":
		return "Use YYYY-MM-DD"
	case "hhmm":
		return "Use H:MM or HH:MM (e.g. 9:30 or 10:02)"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// uuidParam extracts and validates a UUID path parameter. On failure it
// writes the validation response and returns false.
func uuidParam(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if err := uuid.Validate(id); err != nil {
		response.ValidationError(c, []response.Issue{{Path: name, Message: "must be a valid UUID"}})
		return "", false
	}
	return id, true
}
