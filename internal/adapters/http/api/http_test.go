package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roake/dailystat/internal/adapters/http/api"
	"github.com/roake/dailystat/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// captureDeps records the last parsed query and returns a fixed reply.
type captureDeps struct {
	last  types.Query
	reply string
}

func (c *captureDeps) Handle(_ context.Context, q types.Query) string {
	c.last = q
	if c.reply == "" {
		return "ok"
	}
	return c.reply
}

func newTestServer(deps api.Dependencies, opts ...api.Option) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, opts...).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	buf := make([]byte, 4096)
	n, _ := resp.Body.Read(buf)
	return resp, string(buf[:n])
}

func TestPingRoute(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &captureDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When pinging it", func() {
			resp, body := get(t, ts.URL+"/ping")

			Convey("Then it answers pong as plain text", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/plain")
				So(body, ShouldEqual, "pong")
			})
		})
	})
}

func TestStatRoute(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &captureDeps{reply: "@alice, your beard is 12cm today!"}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When requesting with full parameters", func() {
			resp, body := get(t, ts.URL+"/?sender=alice&user=bob&type=Hug&consent=true")

			Convey("Then the reply is always 200 text/plain", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/plain")
				So(body, ShouldEqual, "@alice, your beard is 12cm today!")
			})

			Convey("And the query is parsed and lowercased", func() {
				So(deps.last.SenderRaw, ShouldEqual, "alice")
				So(deps.last.TargetRaw, ShouldEqual, "bob")
				So(deps.last.Command, ShouldEqual, "hug")
				So(deps.last.Consent, ShouldBeTrue)
			})
		})

		Convey("When no type is given", func() {
			get(t, ts.URL+"/?sender=alice")

			Convey("Then the command defaults to beard", func() {
				So(deps.last.Command, ShouldEqual, "beard")
			})
		})

		Convey("When only user is given", func() {
			get(t, ts.URL+"/?user=bob&type=beard")

			Convey("Then the sender falls back to the user", func() {
				So(deps.last.SenderRaw, ShouldEqual, "bob")
			})
		})

		Convey("When a request carries a request id", func() {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/ping", nil)
			So(err, ShouldBeNil)
			req.Header.Set("X-Request-Id", "fixed-id")
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is echoed back", func() {
				So(resp.Header.Get("X-Request-Id"), ShouldEqual, "fixed-id")
			})
		})

		Convey("When a request carries no request id", func() {
			resp, _ := get(t, ts.URL+"/ping")

			Convey("Then one is generated", func() {
				So(resp.Header.Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})
	})
}

func TestStatRoute_ArgumentAliases(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &captureDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When the argument comes under an alias", func() {
			get(t, ts.URL+"/?sender=mod&type=top&text=commands")

			Convey("Then it is picked up", func() {
				So(deps.last.Arg, ShouldEqual, "commands")
			})
		})

		Convey("When several aliases are present", func() {
			get(t, ts.URL+"/?sender=mod&type=top&interaction=hug&arg=commands")

			Convey("Then arg wins", func() {
				So(deps.last.Arg, ShouldEqual, "commands")
			})
		})
	})
}

func TestStatRoute_JokeToggles(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &captureDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When nothing is specified", func() {
			get(t, ts.URL+"/?sender=alice&type=beard")

			Convey("Then jokes default to on", func() {
				So(deps.last.Jokes, ShouldBeTrue)
			})
		})

		Convey("When the global toggle is off", func() {
			get(t, ts.URL+"/?sender=alice&type=beard&jokes=false&joke_beard=true")

			Convey("Then it beats the per-command one", func() {
				So(deps.last.Jokes, ShouldBeFalse)
			})
		})

		Convey("When only the per-command toggle is off", func() {
			get(t, ts.URL+"/?sender=alice&type=beard&joke_beard=false")

			Convey("Then that command's jokes are off", func() {
				So(deps.last.Jokes, ShouldBeFalse)
			})
		})

		Convey("When the server default is off", func() {
			quiet := newTestServer(deps, api.WithJokesDefault(false))
			defer quiet.Close()
			get(t, quiet.URL+"/?sender=alice&type=beard")

			Convey("Then unspecified requests get no jokes", func() {
				So(deps.last.Jokes, ShouldBeFalse)
			})

			Convey("But an explicit toggle still wins", func() {
				get(t, quiet.URL+"/?sender=alice&type=beard&jokes=true")
				So(deps.last.Jokes, ShouldBeTrue)
			})
		})
	})
}

func TestHealthRoute(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &captureDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When scraping healthz", func() {
			resp, body := get(t, ts.URL+"/healthz")

			Convey("Then the metrics registry is served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body, ShouldNotBeEmpty)
			})
		})
	})
}
