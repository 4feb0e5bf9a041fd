package validator

import (
	"log"

	"devstudio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
// Пустые значения правила пропускают - за обязательность отвечает 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-project-status", validateProjectStatus)
	mustRegister("is-project-type", validateProjectType)
	mustRegister("is-budget-range", validateBudgetRange)
	mustRegister("is-review-status", validateReviewStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleTeam, models.UserRoleUser:
		return true
	default:
		return false
	}
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProjectStatus(value) {
	case models.ProjectStatusPending, models.ProjectStatusInReview, models.ProjectStatusApproved,
		models.ProjectStatusRejected, models.ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

func validateProjectType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, t := range models.ProjectTypes {
		if t == value {
			return true
		}
	}
	return false
}

func validateBudgetRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, b := range models.BudgetRanges {
		if b == value {
			return true
		}
	}
	return false
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReviewStatus(value) {
	case models.ReviewStatusPending, models.ReviewStatusApproved, models.ReviewStatusRejected:
		return true
	default:
		return false
	}
}
