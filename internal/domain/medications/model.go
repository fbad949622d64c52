package medications

import (
	"sort"
	"time"
)

// Severity de una interacción reportada por el colaborador externo.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// Interaction la produce un servicio externo; este core solo la lee.
type Interaction struct {
	WithMedicationName string
	Description        string
	Severity           Severity
	Recommendation     string
}

// Inventory: cantidades enteras >= 0.
type Inventory struct {
	Enabled           bool
	CurrentQuantity   int
	LowStockThreshold int
}

// IsLow indica stock bajo (current <= threshold) solo si el inventario está habilitado.
func (i Inventory) IsLow() bool {
	return i.Enabled && i.CurrentQuantity <= i.LowStockThreshold
}

// Medication es la medicación de un usuario.
// Schedule son minutos desde medianoche, únicos; el orden de entrada no importa.
type Medication struct {
	ID          string
	OwnerUserID string

	Name   string
	Dosage string

	Schedule []int
	Active   bool

	Inventory    Inventory
	Interactions []Interaction
	DoseHistory  []time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SortedSchedule devuelve una copia ordenada del schedule (para mostrar).
func (m Medication) SortedSchedule() []int {
	out := make([]int, len(m.Schedule))
	copy(out, m.Schedule)
	sort.Ints(out)
	return out
}
