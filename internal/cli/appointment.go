package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pet-care-dashboard/internal/domain/appointments"
)

type appointmentOutput struct {
	ID         int64  `json:"id" yaml:"id"`
	PetID      int64  `json:"petId" yaml:"petId"`
	PetName    string `json:"petName,omitempty" yaml:"petName,omitempty"`
	PetMissing bool   `json:"petMissing,omitempty" yaml:"petMissing,omitempty"`
	Date       string `json:"date" yaml:"date"`
	Time       string `json:"time" yaml:"time"`
	Type       string `json:"type" yaml:"type"`
	Notes      string `json:"notes" yaml:"notes"`
}

func toAppointmentOutput(v appointments.View) appointmentOutput {
	return appointmentOutput{
		ID:         v.ID,
		PetID:      v.PetID,
		PetName:    v.PetName,
		PetMissing: v.PetMissing,
		Date:       v.Date,
		Time:       v.Time,
		Type:       string(v.Type),
		Notes:      v.Notes,
	}
}

func newAppointmentCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appt",
		Aliases: []string{"appointment"},
		Short:   "Manage appointments",
	}
	cmd.AddCommand(
		newAppointmentAddCommand(s),
		newAppointmentEditCommand(s),
		newAppointmentRemoveCommand(s),
		newAppointmentListCommand(s),
	)
	return cmd
}

func appointmentFlags(cmd *cobra.Command, in *appointments.Input) {
	cmd.Flags().Int64Var(&in.PetID, "pet", 0, "Pet id (required)")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&in.Time, "time", "", "Time HH:MM (required)")
	cmd.Flags().StringVar(&in.Type, "type", string(appointments.TypeVeterinaryCheckup), "veterinary-checkup, vaccination, grooming or exercise")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free-text notes")
	_ = cmd.MarkFlagRequired("pet")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
}

func newAppointmentAddCommand(s *session) *cobra.Command {
	var in appointments.Input

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := s.container.State.AddAppointment(cmd.Context(), in)
			if err != nil {
				return err
			}
			return s.renderAppointment(cmd, a)
		},
	}
	appointmentFlags(cmd, &in)
	return cmd
}

func newAppointmentEditCommand(s *session) *cobra.Command {
	var in appointments.Input

	cmd := &cobra.Command{
		Use:   "edit <appointment-id>",
		Short: "Replace an appointment's fields, keeping its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := s.container.State.UpdateAppointment(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			return s.renderAppointment(cmd, a)
		},
	}
	appointmentFlags(cmd, &in)
	return cmd
}

func newAppointmentRemoveCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <appointment-id>",
		Aliases: []string{"delete"},
		Short:   "Delete an appointment (no-op if it does not exist)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted := s.container.State.DeleteAppointment(cmd.Context(), id)

			out := map[string]any{"id": id, "deleted": deleted}
			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				if !deleted {
					_, err := fmt.Fprintf(w, "appointment %d not found, nothing to delete\n", id)
					return err
				}
				_, err := fmt.Fprintf(w, "appointment %d deleted\n", id)
				return err
			})
		},
	}
}

func newAppointmentListCommand(s *session) *cobra.Command {
	var (
		types    string
		petID    int64
		from, to string
		query    string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := appointments.ListFilter{Query: query, Limit: limit}

			for _, p := range strings.Split(types, ",") {
				if strings.TrimSpace(p) == "" {
					continue
				}
				t, ok := appointments.ParseType(p)
				if !ok {
					return fmt.Errorf("unknown appointment type %q", p)
				}
				f.Types = append(f.Types, t)
			}
			if cmd.Flags().Changed("pet") {
				f.PetID = &petID
			}
			var err error
			if f.From, err = parseDay("from", from); err != nil {
				return err
			}
			if f.To, err = parseDay("to", to); err != nil {
				return err
			}

			items := s.container.State.AppointmentViews(cmd.Context(), f)
			out := make([]appointmentOutput, 0, len(items))
			for _, v := range items {
				out = append(out, toAppointmentOutput(v))
			}

			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				rows := make([][]any, 0, len(out))
				for _, a := range out {
					rows = append(rows, []any{a.ID, a.Date, a.Time, s.labels.Text("type." + a.Type), s.petLabel(a), a.Notes})
				}
				return table(w, []any{"ID", "DATE", "TIME", "TYPE", "PET", "NOTES"}, rows)
			})
		},
	}

	cmd.Flags().StringVar(&types, "type", "", "Comma-separated appointment types")
	cmd.Flags().Int64Var(&petID, "pet", 0, "Only this pet's appointments")
	cmd.Flags().StringVar(&from, "from", "", "First day YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Last day YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search notes")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max appointments (0 = all)")
	return cmd
}

func (s *session) renderAppointment(cmd *cobra.Command, a appointments.Appointment) error {
	names := s.container.State.Pets.Names(cmd.Context())
	out := toAppointmentOutput(appointments.Views([]appointments.Appointment{a}, names)[0])

	return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d %s %s %s %s\n", out.ID, out.Date, out.Time, s.labels.Text("type."+out.Type), s.petLabel(out))
		return err
	})
}

func (s *session) petLabel(a appointmentOutput) string {
	if a.PetMissing {
		return s.labels.Text("pet.unknown")
	}
	return a.PetName
}

func parseDay(name, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("--%s must be YYYY-MM-DD", name)
	}
	return &t, nil
}
