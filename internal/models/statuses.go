package models

// UserRole - роль аккаунта
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleTeam  UserRole = "team"
	UserRoleUser  UserRole = "user"
)

// ProjectStatus - статус заявки/проекта
type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusInReview  ProjectStatus = "in_review"
	ProjectStatusApproved  ProjectStatus = "approved"
	ProjectStatusRejected  ProjectStatus = "rejected"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// PaymentStatus - статус оплаты проекта
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ReviewStatus - статус отзыва (модерация)
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Типы проектов, которые принимает студия
var ProjectTypes = []string{
	"website",
	"web_app",
	"mobile_app",
	"ecommerce",
	"branding",
	"other",
}

// Диапазоны бюджета в заявке
var BudgetRanges = []string{
	"under_1k",
	"1k_5k",
	"5k_10k",
	"10k_25k",
	"above_25k",
}
