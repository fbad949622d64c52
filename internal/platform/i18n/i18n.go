// Package i18n resuelve etiquetas estáticas (t(key)). El contenido dinámico
// (nombres, descripciones) pasa por el traductor, no por acá.
package i18n

import "strings"

const DefaultLanguage = "en"

const (
	KeyInteractionTitle   = "alert.interaction.title"
	KeyInteractionMessage = "alert.interaction.message" // %s medicación, %s otra, %s descripción
	KeyLowStockTitle      = "alert.lowStock.title"
	KeyLowStockMessage    = "alert.lowStock.message" // %s nombre, %d cantidad, %d umbral
	KeyAllClear           = "alert.allClear"
	KeyRecommendation     = "alert.recommendation" // %s
)

// Bundle es inmutable después de construirse.
type Bundle struct {
	fallback string
	strings  map[string]map[string]string
}

func New(fallback string, catalogs map[string]map[string]string) *Bundle {
	fallback = normalize(fallback)
	if fallback == "" {
		fallback = DefaultLanguage
	}
	b := &Bundle{fallback: fallback, strings: make(map[string]map[string]string, len(catalogs))}
	for lang, kv := range catalogs {
		cp := make(map[string]string, len(kv))
		for k, v := range kv {
			cp[k] = v
		}
		b.strings[normalize(lang)] = cp
	}
	return b
}

// Default devuelve el bundle embebido (en / es / hi).
func Default() *Bundle {
	return New(DefaultLanguage, builtin)
}

// T devuelve la etiqueta en lang; si no existe, en el idioma fallback; si tampoco, la key.
func (b *Bundle) T(lang, key string) string {
	if v, ok := b.strings[normalize(lang)][key]; ok {
		return v
	}
	if v, ok := b.strings[b.fallback][key]; ok {
		return v
	}
	return key
}

func (b *Bundle) Fallback() string { return b.fallback }

// Has indica si hay catálogo para lang.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.strings[normalize(lang)]
	return ok
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

var builtin = map[string]map[string]string{
	"en": {
		KeyInteractionTitle:   "Drug interaction",
		KeyInteractionMessage: "%s may interact with %s: %s",
		KeyLowStockTitle:      "Low stock",
		KeyLowStockMessage:    "%s is running low: %d left (refill at %d).",
		KeyAllClear:           "All clear: no alerts right now.",
		KeyRecommendation:     "Recommendation: %s",
	},
	"es": {
		KeyInteractionTitle:   "Interacción de medicamentos",
		KeyInteractionMessage: "%s puede interactuar con %s: %s",
		KeyLowStockTitle:      "Stock bajo",
		KeyLowStockMessage:    "Quedan pocas unidades de %s: %d (reponer en %d).",
		KeyAllClear:           "Todo en orden: no hay alertas.",
		KeyRecommendation:     "Recomendación: %s",
	},
	"hi": {
		KeyInteractionTitle:   "दवा पारस्परिक क्रिया",
		KeyInteractionMessage: "%s की %s के साथ पारस्परिक क्रिया हो सकती है: %s",
		KeyLowStockTitle:      "स्टॉक कम है",
		KeyLowStockMessage:    "%s कम हो रही है: %d बची हैं (%d पर दोबारा खरीदें)।",
		KeyAllClear:           "सब ठीक है: अभी कोई अलर्ट नहीं।",
		KeyRecommendation:     "सुझाव: %s",
	},
}
