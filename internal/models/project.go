package models

import "time"

// Project - клиентская заявка на проект и ее дальнейшая жизнь:
// pending -> in_review -> approved -> completed (или rejected).
// Прогресс и оплата ведутся администратором после одобрения.
type Project struct {
	BaseModel
	ProjectName    string        `gorm:"size:100;not null" json:"project_name"`
	ProjectType    string        `gorm:"size:50;not null" json:"project_type"`
	BudgetRange    string        `gorm:"size:50;not null" json:"budget_range"`
	ProjectDetails string        `gorm:"size:2000;not null" json:"project_details"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	Progress       int           `gorm:"default:0" json:"progress"`
	TotalCost      float64       `gorm:"default:0" json:"total_cost"`
	PaidAmount     float64       `gorm:"default:0" json:"paid_amount"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`
	Status         ProjectStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsArchived     bool          `gorm:"default:false" json:"is_archived"`

	RequestedByID string `gorm:"type:uuid;not null;index" json:"requested_by_id"`
	RequestedBy   *User  `gorm:"foreignKey:RequestedByID" json:"requested_by,omitempty"`
}
