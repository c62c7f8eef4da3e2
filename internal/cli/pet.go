package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"pet-care-dashboard/internal/domain/pets"
)

type petOutput struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Breed      string `json:"breed" yaml:"breed"`
	Age        int    `json:"age" yaml:"age"`
	ImageURL   string `json:"imageUrl" yaml:"imageUrl"`
	IsFavorite bool   `json:"isFavorite" yaml:"isFavorite"`
}

func toPetOutput(p pets.Pet) petOutput {
	return petOutput{
		ID:         p.ID,
		Name:       p.Name,
		Breed:      p.Breed,
		Age:        p.Age,
		ImageURL:   p.ImageURL,
		IsFavorite: p.IsFavorite,
	}
}

func newPetCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Manage pets",
	}
	cmd.AddCommand(
		newPetAddCommand(s),
		newPetListCommand(s),
		newPetFavoriteCommand(s),
	)
	return cmd
}

func newPetAddCommand(s *session) *cobra.Command {
	var in pets.AddInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.container.State.AddPet(cmd.Context(), in)
			if err != nil {
				return err
			}
			return s.renderPet(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Pet name (required)")
	cmd.Flags().StringVar(&in.Breed, "breed", "", "Breed")
	cmd.Flags().IntVar(&in.Age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&in.ImageURL, "image", "", "Image URL")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newPetListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pets, favorites first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := s.container.State.SortedPets(cmd.Context())

			out := make([]petOutput, 0, len(items))
			for _, p := range items {
				out = append(out, toPetOutput(p))
			}

			return render(cmd.OutOrStdout(), s.output, out, func(w io.Writer) error {
				rows := make([][]any, 0, len(out))
				for _, p := range out {
					rows = append(rows, []any{p.ID, star(p.IsFavorite), p.Name, p.Breed, p.Age})
				}
				return table(w, []any{"ID", "FAV", "NAME", "BREED", "AGE"}, rows)
			})
		},
	}
}

func newPetFavoriteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <pet-id>",
		Short: "Toggle a pet's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := s.container.State.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.renderPet(cmd.OutOrStdout(), p)
		},
	}
}

func (s *session) renderPet(w io.Writer, p pets.Pet) error {
	out := toPetOutput(p)
	return render(w, s.output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d %s %s (%s, %d)\n", out.ID, star(out.IsFavorite), out.Name, out.Breed, out.Age)
		return err
	})
}

func star(fav bool) string {
	if fav {
		return "★"
	}
	return "-"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
