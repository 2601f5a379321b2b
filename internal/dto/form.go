package dto

// Choice is one option of a foreign-key select.
type Choice struct {
	Value uint64 `json:"value"`
	Label string `json:"label"`
}

// FormDTO describes a create or edit form.
type FormDTO struct {
	Action  string              `json:"action"`
	Fields  []string            `json:"fields"`
	Initial interface{}         `json:"initial"`
	Choices map[string][]Choice `json:"choices,omitempty"`
}

// DeleteConfirmDTO is shown before a delete is executed.
type DeleteConfirmDTO struct {
	Action  string      `json:"action"`
	Object  interface{} `json:"object"`
	Message string      `json:"message"`
}

// DashboardDTO represents the home screen counters
type DashboardDTO struct {
	Year                   int   `json:"year"`
	TotalStudents          int64 `json:"total_students"`
	StudentsJoinedThisYear int64 `json:"students_joined_this_year"`
	TotalOrganizations     int64 `json:"total_organizations"`
	TotalColleges          int64 `json:"total_colleges"`
	TotalPrograms          int64 `json:"total_programs"`
}
