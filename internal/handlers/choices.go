package handlers

import (
	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
)

func choicesOf[M any](items []M, value func(M) uint64, label func(M) string) []dto.Choice {
	choices := make([]dto.Choice, len(items))
	for i, item := range items {
		choices[i] = dto.Choice{Value: value(item), Label: label(item)}
	}
	return choices
}

func collegeChoices(colleges []models.College) []dto.Choice {
	return choicesOf(colleges,
		func(m models.College) uint64 { return m.ID },
		func(m models.College) string { return m.Name })
}

func programChoices(programs []models.Program) []dto.Choice {
	return choicesOf(programs,
		func(m models.Program) uint64 { return m.ID },
		func(m models.Program) string { return m.Name })
}

func studentChoices(students []models.Student) []dto.Choice {
	return choicesOf(students,
		func(m models.Student) uint64 { return m.ID },
		func(m models.Student) string { return m.FullName() })
}

func organizationChoices(orgs []models.Organization) []dto.Choice {
	return choicesOf(orgs,
		func(m models.Organization) uint64 { return m.ID },
		func(m models.Organization) string { return m.Name })
}
