package main

import (
	"fmt"
	"testing"

	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/smartystreets/goconvey/convey"
)

func TestIsStructural(t *testing.T) {
	convey.Convey("Given allocation errors", t, func() {
		convey.Convey("Then selection problems are structural", func() {
			convey.So(isStructural(allocation.ErrNoPlayers), convey.ShouldBeTrue)
			convey.So(isStructural(&allocation.SurplusError{ExtraTeams: 1}), convey.ShouldBeTrue)
			convey.So(isStructural(&allocation.InsufficientPlayersError{Missing: 6}), convey.ShouldBeTrue)
			convey.So(isStructural(fmt.Errorf("wrap: %w", allocation.ErrInvalidTeamCount)), convey.ShouldBeTrue)
		})

		convey.Convey("Then other failures are not", func() {
			convey.So(isStructural(fmt.Errorf("load roster: no such file")), convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given -help", t, func() {
		convey.Convey("Then run exits cleanly", func() {
			convey.So(run([]string{"-help"}), convey.ShouldEqual, exitOK)
		})
	})
}
