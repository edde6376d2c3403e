package groups

import "time"

// MaxScientificNameLen es el largo máximo de scientific_name (columna varchar(50)).
const MaxScientificNameLen = 50

// Group es la clasificación taxonómica a la que pertenece una mascota.
// scientific_name es único sin distinguir mayúsculas.
type Group struct {
	ID             int64
	ScientificName string
	CreatedAt      time.Time
}
