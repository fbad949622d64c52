package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/platform/i18n"
	"medtrack-core/internal/platform/logger"
	"medtrack-core/internal/platform/metrics"
	"medtrack-core/internal/ports/translation"
)

const DefaultTranslateTimeout = 3 * time.Second

type Options struct {
	DefaultLanguage  string
	TranslateTimeout time.Duration
}

// Aggregator no guarda estado: Compute es función de (meds, dismissed, lang)
// más lo que devuelva el traductor.
type Aggregator struct {
	translator translation.Translator // opcional
	bundle     *i18n.Bundle
	log        logger.Logger
	opts       Options
}

func NewAggregator(tr translation.Translator, bundle *i18n.Bundle, log logger.Logger, opts Options) *Aggregator {
	if bundle == nil {
		bundle = i18n.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	opts.DefaultLanguage = strings.ToLower(strings.TrimSpace(opts.DefaultLanguage))
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = bundle.Fallback()
	}
	if opts.TranslateTimeout <= 0 {
		opts.TranslateTimeout = DefaultTranslateTimeout
	}
	return &Aggregator{
		translator: tr,
		bundle:     bundle,
		log:        log.With(map[string]any{"component": "alert_aggregator"}),
		opts:       opts,
	}
}

// Compute emite primero todas las alertas de interacción (orden de medicaciones y
// de interacciones) y después las de stock bajo. Las descartadas se omiten antes
// de traducir.
func (a *Aggregator) Compute(ctx context.Context, meds []medications.Medication, dismissed Dismissed, lang string) []Alert {
	lang = a.language(lang)
	out := make([]Alert, 0)
	// un ID aparece una sola vez; gana el primer registro
	seen := make(map[string]struct{})
	skip := func(id string) bool {
		if _, ok := seen[id]; ok || dismissed.Has(id) {
			return true
		}
		seen[id] = struct{}{}
		return false
	}

	for _, m := range meds {
		for _, in := range m.Interactions {
			id := InteractionID(m.ID, in.WithMedicationName)
			if skip(id) {
				continue
			}
			out = append(out, a.interactionAlert(ctx, id, m, in, lang))
		}
	}

	for _, m := range meds {
		if !m.Inventory.IsLow() {
			continue
		}
		id := LowStockID(m.ID)
		if skip(id) {
			continue
		}
		out = append(out, Alert{
			ID:                 id,
			Kind:               KindLowStock,
			Title:              a.bundle.T(lang, i18n.KeyLowStockTitle),
			Message:            fmt.Sprintf(a.bundle.T(lang, i18n.KeyLowStockMessage), m.Name, m.Inventory.CurrentQuantity, m.Inventory.LowStockThreshold),
			SourceMedicationID: m.ID,
		})
	}

	for _, al := range out {
		metrics.ObserveAlert(string(al.Kind))
	}
	return out
}

// AllClearText devuelve la etiqueta localizada del estado sin alertas.
func (a *Aggregator) AllClearText(lang string) string {
	return a.bundle.T(a.language(lang), i18n.KeyAllClear)
}

func (a *Aggregator) interactionAlert(ctx context.Context, id string, m medications.Medication, in medications.Interaction, lang string) Alert {
	desc := a.translate(ctx, in.Description, lang)
	msg := fmt.Sprintf(a.bundle.T(lang, i18n.KeyInteractionMessage), m.Name, in.WithMedicationName, desc)
	if rec := strings.TrimSpace(in.Recommendation); rec != "" {
		msg += " " + fmt.Sprintf(a.bundle.T(lang, i18n.KeyRecommendation), a.translate(ctx, rec, lang))
	}
	return Alert{
		ID:                 id,
		Kind:               KindInteraction,
		Title:              a.bundle.T(lang, i18n.KeyInteractionTitle),
		Message:            msg,
		SourceMedicationID: m.ID,
		Severity:           string(in.Severity),
	}
}

// translate nunca falla: ante error o timeout devuelve el texto original.
func (a *Aggregator) translate(ctx context.Context, text, lang string) string {
	if a.translator == nil || lang == a.opts.DefaultLanguage || strings.TrimSpace(text) == "" {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, a.opts.TranslateTimeout)
	defer cancel()

	out, err := a.translator.Translate(ctx, text, lang)
	if err != nil {
		metrics.ObserveTranslationFallback()
		a.log.Warn("translation failed, using original text", map[string]any{
			"lang":  lang,
			"error": err.Error(),
		})
		return text
	}
	if strings.TrimSpace(out) == "" {
		return text
	}
	return out
}

func (a *Aggregator) language(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return a.opts.DefaultLanguage
	}
	return lang
}
