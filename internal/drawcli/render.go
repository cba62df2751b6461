package drawcli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/okian/lineup/internal/domain/model"
)

// WriteTeams prints one block per team with each player's role and tier,
// followed by the team's tier sum.
func WriteTeams(w io.Writer, teams []model.Team) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, team := range teams {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Team %d\t\t(tier sum %d)\n", team.Number, team.TierSum())
		for _, p := range team.Players {
			name := p.Name
			if p.Phantom {
				name += " *"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%d\n", name, p.Role(), int(p.Tier))
		}
	}
	return tw.Flush()
}
