package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ballistics_calculator/internal/models"
)

func trajectoryCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "trajectory",
		Short: "Compute one trajectory from a JSON request file and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			var req models.CalculationRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parsing %s: %w", input, err)
			}

			resp, err := svc.Calculate(req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to a calculation request JSON file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
