package pets

import (
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

const MaxNameLen = 50

// Sex define el sexo de la mascota.
// @Enum Male, Female, Not Informed
type Sex string

const (
	SexMale        Sex = "Male"
	SexFemale      Sex = "Female"
	SexNotInformed Sex = "Not Informed"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexNotInformed:
		return true
	default:
		return false
	}
}

// Pet es una mascota registrada. Group es obligatorio (y no se puede borrar
// mientras alguna mascota lo referencie); Traits es un set sin duplicados.
type Pet struct {
	ID int64

	Name   string
	Age    int
	Weight float64
	Sex    Sex // default Not Informed

	Group  groups.Group
	Traits []traits.Trait
}
