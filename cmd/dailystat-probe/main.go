// Command dailystat-probe smoke-tests a running dailystat instance: it
// pings the service, walks a representative command set and prints a
// latency summary ranked slowest-first.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRounds  = 1
)

// probeCommands is a representative slice of the catalog: numeric stats,
// a list command, interactions and the meta commands.
var probeCommands = []string{
	"beard", "hair", "mila", "luck", "daddy", "vibe",
	"hug", "boop", "top", "whois", "giveaway",
}

type result struct {
	label   string
	status  int
	elapsed time.Duration
	body    string
	err     error
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		sender  = flag.String("sender", "probe", "Acting username for stat requests")
		target  = flag.String("user", "probetarget", "Target username for interactions")
		rounds  = flag.Int("rounds", defaultRounds, "Number of passes over the command set")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Print every response body")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}

	ping := probe(client, "ping", *baseURL+"/ping")
	if ping.err != nil {
		os.Stderr.WriteString("ping failed: " + ping.err.Error() + "\n")
		os.Exit(1)
	}
	fmt.Printf("ping: %q in %s\n", ping.body, ping.elapsed)

	var results []result
	for i := 0; i < *rounds; i++ {
		for _, command := range probeCommands {
			q := url.Values{}
			q.Set("sender", *sender)
			q.Set("type", command)
			if command == "hug" || command == "boop" {
				q.Set("user", *target)
			}
			if command == "whois" {
				q.Set("arg", "daddy")
			}
			r := probe(client, command, *baseURL+"/?"+q.Encode())
			results = append(results, r)
			if *verbose {
				fmt.Printf("  %-10s -> %s\n", command, r.body)
			}
		}
	}

	report(results)
}

// probe issues one GET tagged with a fresh request id.
func probe(client *http.Client, label, target string) result {
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return result{label: label, err: err}
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return result{label: label, elapsed: elapsed, err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result{label: label, status: resp.StatusCode, elapsed: elapsed, err: err}
	}
	return result{label: label, status: resp.StatusCode, elapsed: elapsed, body: string(body)}
}

// report prints per-command latencies ranked slowest-first plus totals.
func report(results []result) {
	failures := 0
	var total time.Duration
	for _, r := range results {
		total += r.elapsed
		if r.err != nil || r.status != http.StatusOK {
			failures++
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed > results[j].elapsed })

	fmt.Printf("\n%d requests, %d failures, total %s\n", len(results), failures, total)
	fmt.Println("slowest first:")
	for _, r := range results {
		status := fmt.Sprintf("%d", r.status)
		if r.err != nil {
			status = "ERR " + r.err.Error()
		}
		fmt.Printf("  %-10s %8s  %s\n", r.label, r.elapsed.Round(time.Microsecond), status)
	}

	if failures > 0 {
		os.Exit(1)
	}
}
