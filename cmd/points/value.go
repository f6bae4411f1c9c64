package main

import (
	"fmt"
	"strconv"

	"card-points/internal/shared"

	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	var deckOnly bool

	cmd := &cobra.Command{
		Use:   "value <card>...",
		Short: "Print the point value of each card",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args, deckOnly)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cards {
				fmt.Fprintf(out, "%d\t%d\n", c, c.Points())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deckOnly, "deck-only", false,
		fmt.Sprintf("Reject card values outside %d..%d", shared.MinCard, shared.MaxCard))
	return cmd
}

// parseCards accepts any integer unless deckOnly is set.
func parseCards(args []string, deckOnly bool) ([]shared.Card, error) {
	cards := make([]shared.Card, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, exitError(2, "invalid card value %q: not an integer", a)
		}
		c := shared.Card(n)
		if deckOnly && !c.Valid() {
			return nil, exitError(2, "card value %d outside deck %d..%d", n, shared.MinCard, shared.MaxCard)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
