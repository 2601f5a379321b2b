package models

import "time"

type Program struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(250);not null" json:"name"`
	CollegeID uint64    `gorm:"not null;index" json:"college_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	College  College   `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
	Students []Student `gorm:"foreignKey:ProgramID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
