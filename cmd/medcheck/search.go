package main

import (
	"strings"
	"time"

	"medtrack-core/internal/adapters/druglabels/openfda"
	"medtrack-core/internal/domain/drugs"
	"medtrack-core/internal/ports/druglabels"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		category  string
		remote    bool
		remoteURL string
		timeout   time.Duration
		then      []string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search medicines by name, alias or symptom",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src druglabels.Source
			if remote {
				c, err := openfda.NewClient(openfda.Config{BaseURL: remoteURL, Timeout: timeout})
				if err != nil {
					return err
				}
				src = c
			}

			m := drugs.NewMatcher(nil, src, nil, drugs.Options{RemoteTimeout: timeout})
			session := drugs.NewSession(m)
			catalog := drugs.DefaultCatalog()

			// cada --then reemplaza al query anterior, como al seguir tipeando
			for _, q := range append([]string{strings.Join(args, " ")}, then...) {
				session.Search(cmd.Context(), q, category, catalog)
			}
			return printJSON(cmd, session.Current())
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", drugs.CategoryAll, "Category filter")
	cmd.Flags().BoolVar(&remote, "remote", false, "Also query the remote drug-label source")
	cmd.Flags().StringVar(&remoteURL, "remote-url", openfda.DefaultBaseURL, "Remote drug-label base URL")
	cmd.Flags().StringArrayVar(&then, "then", nil, "Refined query typed after the previous one (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", drugs.DefaultRemoteTimeout, "Remote lookup timeout")
	return cmd
}
