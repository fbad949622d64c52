package medications

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Payload es la forma JSON de una medicación (API y archivos de la CLI).
type Payload struct {
	ID           string               `json:"id"`
	OwnerUserID  string               `json:"owner_user_id,omitempty"`
	Name         string               `json:"name"`
	Dosage       string               `json:"dosage"`
	Schedule     []int                `json:"schedule"` // minutos desde medianoche
	Active       bool                 `json:"active"`
	Inventory    InventoryPayload     `json:"inventory"`
	Interactions []InteractionPayload `json:"interactions,omitempty"`
	DoseHistory  []time.Time          `json:"dose_history,omitempty"`
}

type InventoryPayload struct {
	Enabled           bool `json:"enabled"`
	CurrentQuantity   int  `json:"current_quantity"`
	LowStockThreshold int  `json:"low_stock_threshold"`
}

type InteractionPayload struct {
	WithMedicationName string   `json:"with_medication_name"`
	Description        string   `json:"description"`
	Severity           Severity `json:"severity"`
	Recommendation     string   `json:"recommendation,omitempty"`
}

// ParseJSON lee un array JSON de medicaciones y valida inventario y schedule.
func ParseJSON(r io.Reader) ([]Medication, error) {
	var in []Payload
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decode medications: %w", err)
	}

	out := make([]Medication, 0, len(in))
	for i, p := range in {
		m := FromPayload(p)
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("medication #%d (%s): %w", i, p.ID, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func FromPayload(p Payload) Medication {
	m := Medication{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Dosage:      p.Dosage,
		Schedule:    append([]int(nil), p.Schedule...),
		Active:      p.Active,
		Inventory: Inventory{
			Enabled:           p.Inventory.Enabled,
			CurrentQuantity:   p.Inventory.CurrentQuantity,
			LowStockThreshold: p.Inventory.LowStockThreshold,
		},
		DoseHistory: append([]time.Time(nil), p.DoseHistory...),
	}
	for _, it := range p.Interactions {
		m.Interactions = append(m.Interactions, Interaction{
			WithMedicationName: it.WithMedicationName,
			Description:        it.Description,
			Severity:           it.Severity,
			Recommendation:     it.Recommendation,
		})
	}
	return m
}

// ToPayload devuelve el schedule ya ordenado.
func ToPayload(m Medication) Payload {
	p := Payload{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Dosage:      m.Dosage,
		Schedule:    m.SortedSchedule(),
		Active:      m.Active,
		Inventory: InventoryPayload{
			Enabled:           m.Inventory.Enabled,
			CurrentQuantity:   m.Inventory.CurrentQuantity,
			LowStockThreshold: m.Inventory.LowStockThreshold,
		},
		DoseHistory: m.DoseHistory,
	}
	for _, it := range m.Interactions {
		p.Interactions = append(p.Interactions, InteractionPayload{
			WithMedicationName: it.WithMedicationName,
			Description:        it.Description,
			Severity:           it.Severity,
			Recommendation:     it.Recommendation,
		})
	}
	return p
}
