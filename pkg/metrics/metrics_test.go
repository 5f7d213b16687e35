package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/roake/dailystat/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("daily"),
			metrics.WithRegistry(reg),
		)

		Convey("Then the manager registers its instruments", func() {
			So(m, ShouldNotBeNil)
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			// Counters without observations are not gathered; gauges are.
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then recording helpers do not panic", func() {
			So(func() {
				metrics.RecordHTTPRequest("root", "GET", "200")
				metrics.RecordHTTPRequestDuration("root", "GET", "200", 1.5)
				metrics.RecordCommand("stat")
				metrics.RecordUnknownCommand()
				metrics.RecordGateBusy()
				metrics.RecordTitleClaimed()
				metrics.RecordConsentRequested()
				metrics.RecordConsentAccepted()
				metrics.RecordConsentDenied()
				metrics.RecordConsentExpired()
				metrics.UpdateConsentPending(2)
				metrics.UpdateLedgerUsers(5)
				metrics.UpdateLedgerCommands(3)
			}, ShouldNotPanic)
		})

		Convey("Then the shared registry is available", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})
	})
}
