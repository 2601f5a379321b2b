package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrInUse    = errors.New("record is still referenced")

	ErrCollegeNotFound      = fmt.Errorf("college: %w", ErrNotFound)
	ErrProgramNotFound      = fmt.Errorf("program: %w", ErrNotFound)
	ErrStudentNotFound      = fmt.Errorf("student: %w", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("organization: %w", ErrNotFound)
	ErrOrgMemberNotFound    = fmt.Errorf("organization member: %w", ErrNotFound)

	ErrCollegeInUse = fmt.Errorf("college has programs or organizations: %w", ErrInUse)
	ErrProgramInUse = fmt.Errorf("program has students: %w", ErrInUse)
)

// Field-level messages returned to forms.
const (
	MsgRequired       = "This field is required."
	MsgInvalidChoice  = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalidDate    = "Enter a valid date."
	MsgInvalidValue   = "Enter a valid value."
	MsgStudentIDTaken = "Student with this Student id already exists."
)

// ValidationError carries one message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Add records message for field unless the field already has one.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Err returns e when it holds at least one message, otherwise nil.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
