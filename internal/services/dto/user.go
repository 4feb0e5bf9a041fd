package dto

// UpdateProfileRequest - обновление профиля. Пароль, email и роль через
// этот путь недостижимы структурно.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=3,max=50"`
	Photo string `json:"photo" binding:"omitempty,max=255"`
}

// UpdateRoleRequest - смена роли администратором
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" validate:"is-user-role"`
}

// UserListFilter - параметры списка пользователей (только админ)
type UserListFilter struct {
	Pagination
}
