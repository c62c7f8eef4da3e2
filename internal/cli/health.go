package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pet-care-dashboard/internal/domain/health"
)

type healthRecordOutput struct {
	ID          int64   `json:"id" yaml:"id"`
	PetID       int64   `json:"petId" yaml:"petId"`
	Date        string  `json:"date" yaml:"date"`
	Type        string  `json:"type" yaml:"type"`
	Status      string  `json:"status" yaml:"status"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Notes       string  `json:"notes" yaml:"notes"`
}

type petHealthOutput struct {
	Latest  *healthRecordOutput  `json:"latest" yaml:"latest"`
	History []healthRecordOutput `json:"history" yaml:"history"`
}

func toHealthRecordOutput(r health.HealthRecord) healthRecordOutput {
	return healthRecordOutput{
		ID:          r.ID,
		PetID:       r.PetID,
		Date:        r.Date,
		Type:        r.Type,
		Status:      string(r.Status),
		Temperature: r.Temperature,
		Weight:      r.Weight,
		Notes:       r.Notes,
	}
}

func newHealthCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Daily health records",
	}
	cmd.AddCommand(
		newHealthUpdateCommand(s),
		newHealthShowCommand(s),
	)
	return cmd
}

func newHealthUpdateCommand(s *session) *cobra.Command {
	var (
		in     health.StatusInput
		status string
	)

	cmd := &cobra.Command{
		Use:   "update <pet-id>",
		Short: "Record today's health status (replaces today's record if present)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parseID(args[0])
			if err != nil {
				return err
			}
			in.Status = health.Status(status)

			rec, err := s.container.State.UpsertHealthRecord(cmd.Context(), petID, in)
			if err != nil {
				return err
			}

			out := toHealthRecordOutput(rec)
			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s %.1f°C %.1fkg\n", out.Date, s.labels.Text("status."+out.Status), out.Temperature, out.Weight)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "healthy, sick, recovering or critical (required)")
	cmd.Flags().Float64Var(&in.Temperature, "temp", 0, "Temperature in °C")
	cmd.Flags().Float64Var(&in.Weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&in.Type, "type", health.TypeCheckup, "Record type")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newHealthShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pet-id>",
		Short: "Show a pet's latest record and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if _, err := s.container.State.Pets.GetByID(ctx, petID); err != nil {
				return err
			}

			out := petHealthOutput{History: []healthRecordOutput{}}
			if latest, ok := s.container.State.LatestHealthRecord(ctx, petID); ok {
				r := toHealthRecordOutput(latest)
				out.Latest = &r
			}
			for _, r := range s.container.State.HealthHistory(ctx, petID) {
				out.History = append(out.History, toHealthRecordOutput(r))
			}

			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				rows := make([][]any, 0, len(out.History))
				for _, r := range out.History {
					rows = append(rows, []any{r.Date, s.labels.Text("status." + r.Status), fmt.Sprintf("%.1f", r.Temperature), fmt.Sprintf("%.1f", r.Weight), r.Notes})
				}
				return table(w, []any{"DATE", "STATUS", "TEMP", "WEIGHT", "NOTES"}, rows)
			})
		},
	}
}
