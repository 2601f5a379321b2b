package models

import "time"

type College struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(250);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Programs      []Program      `gorm:"foreignKey:CollegeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Organizations []Organization `gorm:"foreignKey:CollegeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
