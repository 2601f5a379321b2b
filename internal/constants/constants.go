package constants

// Pagination
const (
	DefaultPageSize = 5
	MinPage         = 1
)

// Member list orderings accepted through the "ordering" query parameter.
const (
	OrderingStudentLastName  = "student__lastname"
	OrderingStudentFirstName = "student__firstname"
	OrderingDateJoined       = "date_joined"
	OrderingDateJoinedDesc   = "-date_joined"
)

// Context keys
const (
	ContextKeyEntityID = "entity_id"
)

const (
	SessionName = "studentorg_session"
	DateLayout  = "2006-01-02"
)
