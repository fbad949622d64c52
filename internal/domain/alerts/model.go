package alerts

import "strings"

type Kind string

const (
	KindInteraction Kind = "interaction"
	KindLowStock    Kind = "low-stock"
	KindInfo        Kind = "info"
	KindSuccess     Kind = "success"
)

// Alert es derivada: no se persiste, se recalcula. El ID sale de la causa
// (medicación + droga, o medicación) para que un dismiss sobreviva al recálculo.
type Alert struct {
	ID                 string
	Kind               Kind
	Title              string
	Message            string
	SourceMedicationID string
	Severity           string
}

// Feed es lo que ve el usuario: alertas vigentes o el estado "todo en orden".
type Feed struct {
	Alerts       []Alert
	AllClear     bool
	AllClearText string
}

func InteractionID(medicationID, withMedicationName string) string {
	return "interaction:" + medicationID + ":" + withMedicationName
}

func LowStockID(medicationID string) string {
	return "low-stock:" + medicationID
}

// Dismissed es el conjunto de IDs descartados por el usuario.
type Dismissed map[string]struct{}

func NewDismissed(ids ...string) Dismissed {
	d := make(Dismissed, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			d[id] = struct{}{}
		}
	}
	return d
}

func (d Dismissed) Has(id string) bool {
	_, ok := d[id]
	return ok
}
