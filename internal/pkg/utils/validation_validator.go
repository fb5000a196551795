package utils

import (
	"healthease-client/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("facility_category", validateFacilityCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateFacilityCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.FacilityCategoryAll,
		constvars.FacilityCategoryHospital,
		constvars.FacilityCategoryClinic,
		constvars.FacilityCategoryPharmacy:
		return true
	}
	return false
}
