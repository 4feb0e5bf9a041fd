package models

// TeamMember - член команды на публичной странице
type TeamMember struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	RoleTitle    string `gorm:"size:100;not null" json:"role_title"`
	Bio          string `gorm:"size:1000" json:"bio"`
	Photo        string `gorm:"default:'default.jpg'" json:"photo"`
	LinkedinURL  string `gorm:"size:200" json:"linkedin_url"`
	GithubURL    string `gorm:"size:200" json:"github_url"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}
