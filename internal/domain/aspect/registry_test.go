package aspect_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/roake/dailystat/internal/domain/aspect"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry_TryClaim(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		r := aspect.New()

		Convey("When the first qualifying user claims", func() {
			w, claimed := r.TryClaim("2024-01-01", "daddy", "bob", "100", "Daddy of the Day")
			So(claimed, ShouldBeTrue)
			So(w.Holder, ShouldEqual, "bob")
			So(w.Title, ShouldEqual, "Daddy of the Day")

			Convey("Then a later claim the same day is rejected and sees the winner", func() {
				w2, claimed2 := r.TryClaim("2024-01-01", "daddy", "carol", "100", "Daddy of the Day")
				So(claimed2, ShouldBeFalse)
				So(w2.Holder, ShouldEqual, "bob")
			})

			Convey("Then the same command on another day is a fresh competition", func() {
				w2, claimed2 := r.TryClaim("2024-01-02", "daddy", "carol", "100", "Daddy of the Day")
				So(claimed2, ShouldBeTrue)
				So(w2.Holder, ShouldEqual, "carol")
			})

			Convey("Then another command the same day is independent", func() {
				_, claimed2 := r.TryClaim("2024-01-01", "pirate", "carol", "100", "Pirate of the Day")
				So(claimed2, ShouldBeTrue)
			})
		})
	})
}

func TestRegistry_SingleWinnerUnderConcurrency(t *testing.T) {
	Convey("Given many near-simultaneous qualifying claims", t, func() {
		r := aspect.New()
		const n = 32

		var wg sync.WaitGroup
		claims := make([]bool, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, claimed := r.TryClaim("2024-01-01", "daddy", fmt.Sprintf("user%d", i), "100", "Daddy of the Day")
				claims[i] = claimed
			}(i)
		}
		wg.Wait()

		Convey("Then exactly one claim succeeds", func() {
			count := 0
			for _, c := range claims {
				if c {
					count++
				}
			}
			So(count, ShouldEqual, 1)

			w, ok := r.Query("2024-01-01", "daddy")
			So(ok, ShouldBeTrue)
			So(w.Holder, ShouldStartWith, "user")
		})
	})
}

func TestRegistry_Query(t *testing.T) {
	Convey("Given a registry with one record", t, func() {
		r := aspect.New()
		r.TryClaim("2024-01-01", "daddy", "bob", "100", "Daddy of the Day")

		Convey("Then Query finds it without mutating", func() {
			w, ok := r.Query("2024-01-01", "daddy")
			So(ok, ShouldBeTrue)
			So(w.Holder, ShouldEqual, "bob")
			w, ok = r.Query("2024-01-01", "daddy")
			So(ok, ShouldBeTrue)
			So(w.Holder, ShouldEqual, "bob")
		})

		Convey("Then absence is a normal state, not an error", func() {
			_, ok := r.Query("2024-01-01", "pirate")
			So(ok, ShouldBeFalse)
			_, ok = r.Query("2024-01-02", "daddy")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRegistry_Retention(t *testing.T) {
	Convey("Given a registry with a 3-day retention window", t, func() {
		r := aspect.New(aspect.WithRetentionDays(3))
		r.TryClaim("2024-01-01", "daddy", "bob", "100", "Daddy of the Day")
		r.TryClaim("2024-01-09", "daddy", "dave", "100", "Daddy of the Day")

		Convey("When a write arrives well past the window", func() {
			r.TryClaim("2024-01-10", "pirate", "carol", "100", "Pirate of the Day")

			Convey("Then stale days are pruned and recent ones survive", func() {
				_, ok := r.Query("2024-01-01", "daddy")
				So(ok, ShouldBeFalse)
				_, ok = r.Query("2024-01-09", "daddy")
				So(ok, ShouldBeTrue)
				_, ok = r.Query("2024-01-10", "pirate")
				So(ok, ShouldBeTrue)
			})
		})
	})
}

func TestNudge(t *testing.T) {
	Convey("Given the nudge helper", t, func() {
		Convey("Then trigger hits step down by one", func() {
			So(aspect.Nudge(100, 0, 100), ShouldEqual, 99)
		})
		Convey("Then values at the range floor step up", func() {
			So(aspect.Nudge(0, 0, 100), ShouldEqual, 1)
		})
		Convey("Then degenerate ranges are left alone", func() {
			So(aspect.Nudge(5, 5, 5), ShouldEqual, 5)
		})
		Convey("Then list indexes nudge within bounds", func() {
			So(aspect.NudgeIndex(0, 10), ShouldEqual, 1)
			So(aspect.NudgeIndex(7, 10), ShouldEqual, 6)
			So(aspect.NudgeIndex(0, 1), ShouldEqual, 0)
		})
	})
}
