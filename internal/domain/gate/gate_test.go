package gate_test

import (
	"errors"
	"testing"

	"github.com/roake/dailystat/internal/domain/gate"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGate(t *testing.T) {
	Convey("Given a fresh gate", t, func() {
		g := gate.New()

		Convey("When a command is acquired", func() {
			ok := g.TryAcquire("daddy")
			So(ok, ShouldBeTrue)

			Convey("Then a second acquire for the same command fails", func() {
				So(g.TryAcquire("daddy"), ShouldBeFalse)
			})

			Convey("Then other commands are unaffected", func() {
				So(g.TryAcquire("pirate"), ShouldBeTrue)
			})

			Convey("Then release frees it again", func() {
				g.Release("daddy")
				So(g.TryAcquire("daddy"), ShouldBeTrue)
			})
		})

		Convey("When releasing a command that was never acquired", func() {
			So(func() { g.Release("ghost") }, ShouldNotPanic)
		})
	})
}

func TestGate_Do(t *testing.T) {
	Convey("Given a fresh gate", t, func() {
		g := gate.New()

		Convey("When the protected section succeeds", func() {
			ran := false
			err := g.Do("daddy", func() error {
				ran = true
				So(g.Held("daddy"), ShouldBeTrue)
				return nil
			})
			So(err, ShouldBeNil)
			So(ran, ShouldBeTrue)

			Convey("Then the flag is released afterwards", func() {
				So(g.Held("daddy"), ShouldBeFalse)
			})
		})

		Convey("When the protected section fails", func() {
			boom := errors.New("boom")
			err := g.Do("daddy", func() error { return boom })
			So(errors.Is(err, boom), ShouldBeTrue)

			Convey("Then the flag is still released and a retry is not busy", func() {
				So(g.Held("daddy"), ShouldBeFalse)
				So(g.Do("daddy", func() error { return nil }), ShouldBeNil)
			})
		})

		Convey("When the flag is already held", func() {
			So(g.TryAcquire("daddy"), ShouldBeTrue)
			err := g.Do("daddy", func() error {
				t.Fatal("protected section must not run while held")
				return nil
			})
			So(errors.Is(err, gate.ErrBusy), ShouldBeTrue)
		})
	})
}
