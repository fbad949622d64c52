package dosage

import (
	"fmt"
	"strings"
)

// Table es la tabla estática de reglas. El orden de iteración es el de declaración,
// y es lo que define el desempate en FindMedicine y en la selección de banda.
type Table struct {
	families []Family
	byKey    map[string]int
}

// NewTable valida y copia las familias. Cada familia necesita clave y al menos una regla.
func NewTable(families ...Family) (*Table, error) {
	t := &Table{
		families: make([]Family, 0, len(families)),
		byKey:    make(map[string]int, len(families)),
	}
	for _, f := range families {
		key := strings.ToLower(strings.TrimSpace(f.Key))
		if key == "" {
			return nil, fmt.Errorf("dosage table: family without key")
		}
		if _, dup := t.byKey[key]; dup {
			return nil, fmt.Errorf("dosage table: duplicate family %q", key)
		}
		if len(f.Rules) == 0 {
			return nil, fmt.Errorf("dosage table: family %q has no rules", key)
		}

		cp := Family{
			Key:      key,
			Aliases:  append([]string(nil), f.Aliases...),
			Category: f.Category,
			Rules:    make([]Rule, len(f.Rules)),
		}
		copy(cp.Rules, f.Rules)

		t.byKey[key] = len(t.families)
		t.families = append(t.families, cp)
	}
	return t, nil
}

// Families devuelve las familias en orden de declaración.
func (t *Table) Families() []Family {
	out := make([]Family, len(t.families))
	copy(out, t.families)
	return out
}

func (t *Table) Get(key string) (Family, bool) {
	i, ok := t.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Family{}, false
	}
	return t.families[i], true
}

// Keys devuelve las claves canónicas en orden.
func (t *Table) Keys() []string {
	out := make([]string, 0, len(t.families))
	for _, f := range t.families {
		out = append(out, f.Key)
	}
	return out
}

func mustTable(families ...Family) *Table {
	t, err := NewTable(families...)
	if err != nil {
		panic(err)
	}
	return t
}
