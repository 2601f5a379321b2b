package models

import "time"

type Student struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	StudentNo  string    `gorm:"column:student_id;type:varchar(15);uniqueIndex;not null" json:"student_id"`
	LastName   string    `gorm:"type:varchar(25);not null" json:"last_name"`
	FirstName  string    `gorm:"type:varchar(25);not null" json:"first_name"`
	MiddleName string    `gorm:"type:varchar(25)" json:"middle_name"`
	ProgramID  uint64    `gorm:"not null;index" json:"program_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Program     Program     `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Memberships []OrgMember `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// FullName renders the student as "Last, First Middle".
func (s Student) FullName() string {
	name := s.LastName + ", " + s.FirstName
	if s.MiddleName != "" {
		name += " " + s.MiddleName
	}
	return name
}
