package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/roake/dailystat/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars(t)

			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Timezone, convey.ShouldEqual, "Europe/London")
				convey.So(cfg.ConsentTTLSeconds, convey.ShouldEqual, 60)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars(t)
			t.Setenv("DAILYSTAT_ADDR", ":9090")
			t.Setenv("DAILYSTAT_CONSENT_TTL_SECONDS", "120")
			t.Setenv("DAILYSTAT_MAX_TOP_LIMIT", "25")
			t.Setenv("DAILYSTAT_JOKES_DEFAULT", "false")

			cfg, err := config.Load()

			convey.Convey("Then env values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ConsentTTLSeconds, convey.ShouldEqual, 120)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 25)
				convey.So(cfg.JokesDefault, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			data := []byte("addr: \":7070\"\ntimezone: \"UTC\"\naspect_retention_days: 3\n")
			convey.So(os.WriteFile(path, data, 0o600), convey.ShouldBeNil)
			t.Setenv("DAILYSTAT_CONFIG", path)

			cfg, err := config.Load()

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Timezone, convey.ShouldEqual, "UTC")
				convey.So(cfg.AspectRetentionDays, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When env overrides a file value", func() {
			clearConfigEnvVars(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600), convey.ShouldBeNil)
			t.Setenv("DAILYSTAT_CONFIG", path)
			t.Setenv("DAILYSTAT_ADDR", ":6060")

			cfg, err := config.Load()

			convey.Convey("Then env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the timezone is unknown", func() {
			clearConfigEnvVars(t)
			t.Setenv("DAILYSTAT_TIMEZONE", "Atlantis/Lost")

			cfg, err := config.Load()

			convey.Convey("Then validation fails", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a numeric bound is out of range", func() {
			clearConfigEnvVars(t)
			t.Setenv("DAILYSTAT_MAX_TOP_LIMIT", "0")

			cfg, err := config.Load()

			convey.Convey("Then validation fails", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars(t)
			t.Setenv("DAILYSTAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			cfg, err := config.Load()

			convey.Convey("Then loading fails", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DAILYSTAT_CONFIG",
		"DAILYSTAT_ADDR",
		"DAILYSTAT_LOG_LEVEL",
		"DAILYSTAT_TIMEZONE",
		"DAILYSTAT_CONSENT_TTL_SECONDS",
		"DAILYSTAT_ASPECT_RETENTION_DAYS",
		"DAILYSTAT_MAX_TOP_LIMIT",
		"DAILYSTAT_JOKES_DEFAULT",
		"DAILYSTAT_CATALOG_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
