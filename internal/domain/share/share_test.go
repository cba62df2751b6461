package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/okian/lineup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleTeams() []model.Team {
	return []model.Team{
		{Number: 1, Players: []model.Player{
			{Name: "Ana", Tier: 2, Goalkeeper: true},
			{Name: "Bia", Tier: 1},
		}},
		{Number: 2, Players: []model.Player{
			{Name: "Fill-in 1", Tier: 3, Goalkeeper: true, Phantom: true},
			{Name: "Caio & Duda", Tier: 3},
		}},
	}
}

func TestMessage(t *testing.T) {
	Convey("Given two drawn teams", t, func() {
		msg := Message(sampleTeams())

		Convey("Then a header opens the message and each team lists its players as bullets", func() {
			So(msg, ShouldEqual, "⚽ *Teams Drawn* ⚽\n\n"+
				"*Team 1:*\n- Ana (Goalkeeper)\n- Bia\n\n"+
				"*Team 2:*\n- Fill-in 1 (Goalkeeper)\n- Caio & Duda\n")
		})

		Convey("Then every player line is a bullet", func() {
			for _, line := range strings.Split(strings.TrimSpace(msg), "\n") {
				if line == "" || line == Header || strings.HasPrefix(line, "*Team ") {
					continue
				}
				So(line, ShouldStartWith, "- ")
			}
		})
	})

	Convey("Given no teams", t, func() {
		Convey("Then the message is empty, header included", func() {
			So(Message(nil), ShouldBeEmpty)
		})
	})
}

func TestWhatsAppLink(t *testing.T) {
	Convey("Given two drawn teams", t, func() {
		link := WhatsAppLink(sampleTeams())

		Convey("Then the link targets the send endpoint", func() {
			So(strings.HasPrefix(link, WhatsAppBaseURL+"?text="), ShouldBeTrue)
		})

		Convey("Then the text parameter decodes back to the message", func() {
			u, err := url.Parse(link)
			So(err, ShouldBeNil)
			So(u.Query().Get("text"), ShouldEqual, Message(sampleTeams()))
		})

		Convey("Then reserved characters are escaped", func() {
			So(link, ShouldNotContainSubstring, "&D")
			So(link, ShouldContainSubstring, "%26")
			So(link, ShouldContainSubstring, "%E2%9A%BD")
		})
	})
}
