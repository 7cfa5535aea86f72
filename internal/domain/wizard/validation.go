package wizard

import (
	"fmt"
	"reflect"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Household size bounds.
const (
	MinHouseholdMembers = 2
	MaxHouseholdMembers = 10
)

// Result is the outcome of validating a step. Errors are keyed by field path, e.g. "members.0.age".
type Result struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Passed returns a successful result.
func Passed() Result {
	return Result{OK: true}
}

// Failed returns a result carrying the given field errors.
func Failed(fieldErrors map[string]string) Result {
	return Result{OK: false, Errors: fieldErrors}
}

type householdForm struct {
	Members []entity.HouseholdMember `json:"members" validate:"min=2,max=10,dive"`
}

var householdValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// ValidateHousehold checks the household step: 2-10 members, each with a non-empty name,
// an age within 0-120 and a role of parent, teen or kid.
func ValidateHousehold(members []entity.HouseholdMember) Result {
	err := householdValidator.Struct(householdForm{Members: members})
	if err == nil {
		return Passed()
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Failed(map[string]string{"members": err.Error()})
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if _, exists := out[path]; !exists {
			out[path] = fieldMessage(fe)
		}
	}

	return Failed(out)
}

// fieldPath turns "householdForm.members[0].name" into "members.0.name".
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}

	replacer := strings.NewReplacer("[", ".", "]", "")

	return replacer.Replace(rest)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "members":
		if fe.Tag() == "min" {
			return fmt.Sprintf("a household needs at least %d members", MinHouseholdMembers)
		}

		return fmt.Sprintf("a household can have at most %d members", MaxHouseholdMembers)
	case "name":
		return "name is required"
	case "age":
		return "age must be between 0 and 120"
	case "role":
		return "role must be one of parent, teen, kid"
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
