package allocation_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPad(t *testing.T) {
	Convey("Given a selection and a team count", t, func() {
		Convey("When no players are selected", func() {
			_, _, err := allocation.Pad(nil, 2, 5, "Fill-in")

			Convey("Then ErrNoPlayers is returned", func() {
				So(errors.Is(err, allocation.ErrNoPlayers), ShouldBeTrue)
			})
		})

		Convey("When fewer than two teams are requested", func() {
			_, _, err := allocation.Pad(roster(5, 0), 1, 5, "Fill-in")

			Convey("Then ErrInvalidTeamCount is returned", func() {
				So(errors.Is(err, allocation.ErrInvalidTeamCount), ShouldBeTrue)
			})
		})

		Convey("When 23 players are selected for 2 teams", func() {
			_, _, err := allocation.Pad(roster(23, 2), 2, 5, "Fill-in")

			Convey("Then a surplus of 3 teams is reported", func() {
				var surplus *allocation.SurplusError
				So(errors.As(err, &surplus), ShouldBeTrue)
				So(surplus.Selected, ShouldEqual, 23)
				So(surplus.Capacity, ShouldEqual, 10)
				So(surplus.ExtraTeams, ShouldEqual, 3)
				So(errors.Is(err, allocation.ErrSurplus), ShouldBeTrue)
			})
		})

		Convey("When 11 players are selected for 2 teams", func() {
			_, _, err := allocation.Pad(roster(11, 2), 2, 5, "Fill-in")

			Convey("Then a single extra team absorbs the surplus", func() {
				var surplus *allocation.SurplusError
				So(errors.As(err, &surplus), ShouldBeTrue)
				So(surplus.ExtraTeams, ShouldEqual, 1)
			})
		})

		Convey("When 10 players are selected for 4 teams", func() {
			_, _, err := allocation.Pad(roster(10, 2), 4, 5, "Fill-in")

			Convey("Then the shortfall is rejected", func() {
				var short *allocation.InsufficientPlayersError
				So(errors.As(err, &short), ShouldBeTrue)
				So(short.Missing, ShouldEqual, 10)
				So(short.Required, ShouldEqual, 20)
				So(short.ExtraTeams, ShouldEqual, 2)
				So(short.MaxTeams, ShouldEqual, 2)
				So(errors.Is(err, allocation.ErrInsufficientPlayers), ShouldBeTrue)
				So(errors.Is(err, allocation.ErrSurplus), ShouldBeFalse)
			})
		})

		Convey("When exactly one team's worth minus one is missing", func() {
			players := roster(16, 4)
			padded, phantoms, err := allocation.Pad(players, 4, 5, "Fill-in")

			Convey("Then four placeholders are appended", func() {
				So(err, ShouldBeNil)
				So(phantoms, ShouldEqual, 4)
				So(padded, ShouldHaveLength, 20)
				So(players, ShouldHaveLength, 16)
				for _, p := range padded[16:] {
					So(p.Phantom, ShouldBeTrue)
					So(p.Goalkeeper, ShouldBeFalse)
					So(p.Tier, ShouldEqual, model.TierWeak)
				}
				So(padded[16].Name, ShouldEqual, "Fill-in 1")
				So(padded[19].Name, ShouldEqual, "Fill-in 4")
			})
		})

		Convey("When one more player is missing than placeholders may cover", func() {
			_, _, err := allocation.Pad(roster(15, 4), 4, 5, "Fill-in")

			Convey("Then the shortfall is rejected", func() {
				var short *allocation.InsufficientPlayersError
				So(errors.As(err, &short), ShouldBeTrue)
				So(short.Missing, ShouldEqual, 5)
				So(short.MaxTeams, ShouldEqual, 3)
			})
		})

		Convey("When the selection matches capacity", func() {
			padded, phantoms, err := allocation.Pad(roster(10, 2), 2, 5, "Fill-in")

			Convey("Then nothing is added", func() {
				So(err, ShouldBeNil)
				So(phantoms, ShouldEqual, 0)
				So(padded, ShouldHaveLength, 10)
			})
		})
	})
}

func TestCategorize(t *testing.T) {
	Convey("Given a mixed roster", t, func() {
		players := []model.Player{
			{Name: "A", Tier: 1, Goalkeeper: true},
			{Name: "B", Tier: 1},
			{Name: "C", Tier: 2},
			{Name: "D", Tier: 3},
			{Name: "E", Tier: 3, Goalkeeper: true},
			{Name: "F", Tier: 2},
			allocation.Phantom("Fill-in", 1),
		}

		pools := allocation.Categorize(players)

		Convey("Then goalkeepers are pooled regardless of tier", func() {
			So(pools.Goalkeepers, ShouldResemble, []int{0, 4})
		})

		Convey("Then outfield players are split by tier in input order", func() {
			So(pools.Tier1, ShouldResemble, []int{1})
			So(pools.Tier2, ShouldResemble, []int{2, 5})
			So(pools.Tier3, ShouldResemble, []int{3, 6})
		})
	})
}
