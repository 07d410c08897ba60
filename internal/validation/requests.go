package validation

import (
	"errors"
	"reflect"
	"strings"

	"property-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// Pointer fields distinguish "missing" from zero values so the required
// rule behaves the way clients expect for 0 and "".

// StorePropertyRequest is the payload for creating a property.
type StorePropertyRequest struct {
	Name    *string `json:"name" validate:"required,min=2,max=100"`
	Address *string `json:"address" validate:"required"`
}

// UpdatePropertyRequest shares the store rules; updates are a full replace.
type UpdatePropertyRequest = StorePropertyRequest

// StoreRoomRequest is the payload for creating a room.
type StoreRoomRequest struct {
	PropertyID *uint   `json:"property_id" validate:"required"`
	Name       *string `json:"name" validate:"required,min=2,max=100"`
	Size       *int    `json:"size" validate:"required,min=1"`
	SizeUnit   *string `json:"size_unit" validate:"required,size_unit"`
}

// UpdateRoomRequest shares the store rules; all fields stay required.
type UpdateRoomRequest = StoreRoomRequest

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Membership in the closed size unit set
	if err := v.RegisterValidation("size_unit", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, unit := range models.SizeUnitValues() {
			if value == unit {
				return true
			}
		}
		return false
	}); err != nil {
		panic(err)
	}

	return v
}

// Errors maps a field name to its rule-violation messages.
type Errors map[string][]string

// Validate checks payload against its declared rules and returns the
// per-field messages, or nil when the payload is valid.
func Validate(payload interface{}) Errors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Errors{"payload": {"The payload is invalid."}}
	}

	out := Errors{}
	for _, fe := range fieldErrors {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}
