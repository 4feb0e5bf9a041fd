package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleDTO struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"omitempty,is-user-role"`
	Type   string `json:"project_type" validate:"omitempty,is-project-type"`
	Budget string `json:"budget_range" validate:"omitempty,is-budget-range"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := New()

	// Валидная структура
	err := v.Validate(&sampleDTO{Email: "a@b.com", Role: "admin", Type: "website", Budget: "1k_5k"})
	assert.NoError(t, err)

	// Пустые опциональные поля пропускаются
	err = v.Validate(&sampleDTO{Email: "a@b.com"})
	assert.NoError(t, err)

	// Невалидная роль
	err = v.Validate(&sampleDTO{Email: "a@b.com", Role: "superuser"})
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")

	// Невалидный тип проекта
	err = v.Validate(&sampleDTO{Email: "a@b.com", Type: "spaceship"})
	vErr, ok = err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "project_type")
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "not-an-email"})
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	// Имя поля из json-тега, не имя Go-структуры
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}
