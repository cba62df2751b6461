// Package share renders a draw as a chat message and a WhatsApp share link.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/okian/lineup/internal/domain/model"
)

const (
	// WhatsAppBaseURL is the send endpoint the link points at.
	WhatsAppBaseURL = "https://api.whatsapp.com/send"

	// Header opens every non-empty message.
	Header = "⚽ *Teams Drawn* ⚽"
)

// Message renders Header, then each team as a bold "*Team N:*" line followed
// by one "- Name" bullet per player. Goalkeepers carry a "(Goalkeeper)" mark.
// Blocks are separated by a blank line. No teams render as "".
func Message(teams []model.Team) string {
	if len(teams) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header + "\n")
	for _, team := range teams {
		fmt.Fprintf(&b, "\n*Team %d:*\n", team.Number)
		for _, p := range team.Players {
			b.WriteString("- " + p.Name)
			if p.Goalkeeper {
				b.WriteString(" (Goalkeeper)")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WhatsAppLink returns a link that opens WhatsApp with Message(teams)
// prefilled.
func WhatsAppLink(teams []model.Team) string {
	return WhatsAppBaseURL + "?text=" + url.QueryEscape(Message(teams))
}
