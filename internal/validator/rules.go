package validator

import (
	"log"
	"strings"
	"time"

	"campushire_backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const minJoinYear = models.MinYearOfJoining

// nowFunc подменяется в тестах
var nowFunc = time.Now

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-register-role", validateRegisterRole)
	mustRegister("is-question-type", validateQuestionType)
	mustRegister("decimal", validateDecimal)
	mustRegister("join-year", validateJoinYear)
}

func validateRegisterRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Registrable()
}

func validateQuestionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.QuestionType(value).Valid()
}

// validateDecimal - неотрицательное десятичное число, например "12.5"
func validateDecimal(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

func validateJoinYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year >= minJoinYear && year <= int64(nowFunc().Year())
}
