package main

import (
	"fmt"
	"os"
	"time"

	"medtrack-core/internal/adapters/storage/memory"
	"medtrack-core/internal/adapters/translation"
	"medtrack-core/internal/adapters/translation/libre"
	"medtrack-core/internal/domain/alerts"
	"medtrack-core/internal/domain/medications"
	ports "medtrack-core/internal/ports/translation"

	"github.com/spf13/cobra"
)

func newAlertsCmd() *cobra.Command {
	var (
		file         string
		lang         string
		dismissed    []string
		translateURL string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Compute interaction and low-stock alerts from a medications JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open medications file: %w", err)
			}
			defer f.Close()

			meds, err := medications.ParseJSON(f)
			if err != nil {
				return err
			}

			var tr ports.Translator
			if translateURL != "" {
				c, err := libre.NewClient(libre.Config{BaseURL: translateURL, Timeout: timeout})
				if err != nil {
					return err
				}
				tr = translation.NewCached(c, memory.NewTranslationCache(), nil, translation.CachedOptions{})
			}

			agg := alerts.NewAggregator(tr, nil, nil, alerts.Options{TranslateTimeout: timeout})
			list := agg.Compute(cmd.Context(), meds, alerts.NewDismissed(dismissed...), lang)

			feed := alerts.Feed{Alerts: list, AllClear: len(list) == 0}
			if feed.AllClear {
				feed.AllClearText = agg.AllClearText(lang)
			}
			return printJSON(cmd, feed)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Medications JSON file (required)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Display language (en, es, hi)")
	cmd.Flags().StringSliceVarP(&dismissed, "dismiss", "d", nil, "Alert IDs to exclude")
	cmd.Flags().StringVar(&translateURL, "translate-url", "", "LibreTranslate-compatible base URL (optional)")
	cmd.Flags().DurationVar(&timeout, "timeout", alerts.DefaultTranslateTimeout, "Translation timeout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
