package main

import (
	"medtrack-core/internal/domain/dosage"

	"github.com/spf13/cobra"
)

func newDosageCmd() *cobra.Command {
	var name, age, gender string

	cmd := &cobra.Command{
		Use:   "dosage",
		Short: "Age-banded dosage recommendation (educational only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := dosage.NewResolver(nil).Recommend(name, age, gender)
			if err != nil {
				return err
			}
			return printJSON(cmd, rec)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Medicine name (required)")
	cmd.Flags().StringVarP(&age, "age", "a", "", "Age in years, 0-150 (required)")
	cmd.Flags().StringVarP(&gender, "gender", "g", "", "male, female or other")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}
