package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/lineup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDrawHistory(t *testing.T) {
	ctx := context.Background()

	Convey("Given a history holding three draws", t, func() {
		h := NewDrawHistory(WithCapacity(3))

		for i := 1; i <= 3; i++ {
			So(h.Save(ctx, model.Draw{ID: fmt.Sprintf("d-%d", i), NumTeams: 2}), ShouldBeNil)
		}
		So(h.Len(), ShouldEqual, 3)

		Convey("When a fourth draw is saved", func() {
			So(h.Save(ctx, model.Draw{ID: "d-4", NumTeams: 4}), ShouldBeNil)

			Convey("Then the oldest is evicted", func() {
				So(h.Len(), ShouldEqual, 3)
				_, err := h.Get(ctx, "d-1")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)

				d, err := h.Get(ctx, "d-4")
				So(err, ShouldBeNil)
				So(d.NumTeams, ShouldEqual, 4)
			})
		})

		Convey("When a draw ID is reused", func() {
			err := h.Save(ctx, model.Draw{ID: "d-2"})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, ErrDuplicate), ShouldBeTrue)
				So(h.Len(), ShouldEqual, 3)
			})
		})
	})

	Convey("Given default options", t, func() {
		h := NewDrawHistory(WithCapacity(0))

		Convey("Then the default capacity applies", func() {
			So(h.capacity, ShouldEqual, DefaultDrawCapacity)
		})
	})
}
