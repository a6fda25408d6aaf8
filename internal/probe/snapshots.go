package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/velocity/internal/domain/dashboard"
)

type job struct {
	entry dashboard.Entry
}

// collector aggregates worker results.
type collector struct {
	sent, ok, failed, violations int64

	mu       sync.Mutex
	failures []Failure
}

func (c *collector) record(f *Failure, violations int) {
	atomic.AddInt64(&c.sent, 1)
	if f == nil {
		atomic.AddInt64(&c.ok, 1)
		return
	}
	atomic.AddInt64(&c.failed, 1)
	atomic.AddInt64(&c.violations, int64(violations))
	c.mu.Lock()
	c.failures = append(c.failures, *f)
	c.mu.Unlock()
}

// fetchSnapshots requests every route cfg.Requests times over a worker pool
// and validates each body against the route's bounds.
func fetchSnapshots(ctx context.Context, cfg *Config, client *httpClient, entries []dashboard.Entry, stats *Stats) {
	jobs := make(chan job, cfg.Workers*WorkerChannelMultiplier)
	col := &collector{}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				col.record(checkSnapshot(ctx, client, j.entry))
			}
		}()
	}

	go func() {
		defer close(jobs)
		for n := 0; n < cfg.Requests; n++ {
			for _, e := range entries {
				select {
				case <-ctx.Done():
					return
				case jobs <- job{entry: e}:
				}
			}
		}
	}()

	wg.Wait()

	stats.RequestsSent = int(col.sent)
	stats.RequestsOK = int(col.ok)
	stats.RequestsFailed = int(col.failed)
	stats.Violations = int(col.violations)
	stats.Failures = col.failures
}

// checkSnapshot returns nil when the route answered a valid snapshot.
func checkSnapshot(ctx context.Context, client *httpClient, e dashboard.Entry) (*Failure, int) {
	resp, err := client.get(ctx, e.Route)
	if err != nil {
		return &Failure{Route: e.Route, Reason: err.Error()}, 0
	}
	fail := func(format string, args ...any) *Failure {
		return &Failure{Route: e.Route, RequestID: resp.RequestID, Reason: fmt.Sprintf(format, args...)}
	}

	switch {
	case resp.StatusCode != http.StatusOK:
		return fail("status %d", resp.StatusCode), 0
	case !strings.HasPrefix(resp.ContentType, "application/json"):
		return fail("content type %q", resp.ContentType), 0
	case resp.EchoedID != resp.RequestID:
		return fail("request id echoed as %q", resp.EchoedID), 0
	}

	var doc map[string]any
	if err := decodeJSON(resp.Body, &doc); err != nil {
		return fail("%v", err), 0
	}
	if v := e.Check(doc); len(v) > 0 {
		reasons := make([]string, len(v))
		for i := range v {
			reasons[i] = v[i].String()
		}
		return fail("%s", strings.Join(reasons, "; ")), len(v)
	}
	return nil, 0
}
