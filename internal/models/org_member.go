package models

import "time"

// OrgMember links a student to an organization they joined on DateJoined.
type OrgMember struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	StudentID      uint64    `gorm:"not null;index" json:"student_id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	DateJoined     time.Time `gorm:"type:date;not null;index" json:"date_joined"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Student      Student      `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&College{},
		&Program{},
		&Student{},
		&Organization{},
		&OrgMember{},
	}
}
