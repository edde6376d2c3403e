package traits

import "time"

const MaxNameLen = 20

// Trait es una etiqueta descriptiva ("Venomous", "Friendly") compartida entre mascotas.
type Trait struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
