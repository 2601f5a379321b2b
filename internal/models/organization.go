package models

import "time"

type Organization struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(250);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CollegeID   *uint64   `gorm:"index" json:"college_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	College *College    `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
	Members []OrgMember `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"-"`
}
