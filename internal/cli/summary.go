package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type summaryOutput struct {
	Pets          int    `json:"pets" yaml:"pets"`
	Favorites     int    `json:"favorites" yaml:"favorites"`
	Appointments  int    `json:"appointments" yaml:"appointments"`
	Upcoming      int    `json:"upcoming" yaml:"upcoming"`
	OverallHealth string `json:"overallHealth" yaml:"overallHealth"`
	OverallLabel  string `json:"overallLabel" yaml:"overallLabel"`
}

func newSummaryCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Dashboard summary: counts and overall health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := s.container.State.Summary(cmd.Context())
			out := summaryOutput{
				Pets:          sum.Pets,
				Favorites:     sum.Favorites,
				Appointments:  sum.Appointments,
				Upcoming:      sum.Upcoming,
				OverallHealth: string(sum.OverallHealth),
				OverallLabel:  s.labels.Text("overall." + string(sum.OverallHealth)),
			}

			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "pets: %d (favorites %d)\nappointments: %d (upcoming %d)\nhealth: %s\n",
					out.Pets, out.Favorites, out.Appointments, out.Upcoming, out.OverallLabel)
				return err
			})
		},
	}
}
