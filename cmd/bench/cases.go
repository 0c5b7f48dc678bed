// README: Bench cases: health, planner endpoints, saved-trip lifecycle, store checks and load.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client

	// savedID carries the trip created by the lifecycle cases.
	savedID string
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

// sampleTrip is a well-formed itinerary accepted by POST /saveTrips.
var sampleTrip = map[string]any{
	"destination":      "Jaipur, India",
	"best_time":        "October to March, when days are mild.",
	"duration_days":    2,
	"top_attractions":  []string{"Amber Fort", "Hawa Mahal"},
	"sample_itinerary": []map[string]any{{"day": 1, "plan": "Amber Fort"}, {"day": 2, "plan": "City Palace"}},
	"estimated_budget_inr": map[string]any{
		"low": 6000, "mid": 12000, "high": 30000,
	},
	"local_tips": []string{"Bargain in the bazaars"},
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				res, body := r.do(ctx, http.MethodGet, base+"/health", nil)
				if res.Status != StatusPass {
					return res
				}
				return expect(res, gjson.GetBytes(body, "ok").Bool(), "body.ok != true")
			},
		},
		{
			Name: "Store: Postgres trips table",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: StatusSkip, Note: "dsn not set"}
				}
				var exists bool
				err := r.db.QueryRow(ctx, `SELECT to_regclass('public.trips') IS NOT NULL`).Scan(&exists)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return expect(Result{Status: StatusPass}, exists, "trips table missing; run tripgen migrate")
			},
		},
		{
			Name: "Store: Redis reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not set"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		{
			Name: "Planner: place-list",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.WithLLM {
					return Result{Status: StatusSkip, Note: "llm=false"}
				}
				res, body := r.do(ctx, http.MethodGet, base+"/api/place-list", nil)
				if res.Status != StatusPass {
					return res
				}
				return expect(res, gjson.GetBytes(body, "city").IsArray() && gjson.GetBytes(body, "country").IsArray(), "missing city/country arrays")
			},
		},
		{
			Name: "Planner: travel-plan",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.WithLLM {
					return Result{Status: StatusSkip, Note: "llm=false"}
				}
				res, body := r.do(ctx, http.MethodGet, base+"/api/travel-plan?city=Jaipur&country=India&days=2", nil)
				if res.Status != StatusPass {
					return res
				}
				return expect(res, gjson.GetBytes(body, "sample_itinerary").IsArray(), "missing sample_itinerary")
			},
		},
		{
			Name: "Trips: save",
			Run: func(ctx context.Context, r *Runner) Result {
				res, body := r.do(ctx, http.MethodPost, base+"/saveTrips", sampleTrip, http.StatusCreated)
				if res.Status != StatusPass {
					return res
				}
				r.savedID = gjson.GetBytes(body, "trip._id").String()
				return expect(res, r.savedID != "", "response has no trip._id")
			},
		},
		{
			Name: "Trips: save invalid (missing duration_days)",
			Run: func(ctx context.Context, r *Runner) Result {
				invalid := map[string]any{}
				for k, v := range sampleTrip {
					if k != "duration_days" {
						invalid[k] = v
					}
				}
				res, _ := r.do(ctx, http.MethodPost, base+"/saveTrips", invalid, http.StatusInternalServerError)
				return res
			},
		},
		{
			Name: "Trips: list contains saved",
			Run: func(ctx context.Context, r *Runner) Result {
				res, body := r.do(ctx, http.MethodGet, base+"/saveTrips", nil)
				if res.Status != StatusPass || r.savedID == "" {
					return res
				}
				found := false
				gjson.ParseBytes(body).ForEach(func(_, v gjson.Result) bool {
					found = v.Get("_id").String() == r.savedID
					return !found
				})
				return expect(res, found, "saved trip not listed")
			},
		},
		{
			Name: "Trips: concurrent saves",
			Run: func(ctx context.Context, r *Runner) Result {
				return r.concurrentSaves(ctx, base+"/saveTrips")
			},
		},
		{
			Name: "Trips: list throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return r.perfLoad(ctx, base+"/saveTrips")
			},
		},
		{
			Name: "Trips: delete saved",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.savedID == "" {
					return Result{Status: StatusSkip, Note: "nothing saved"}
				}
				res, _ := r.do(ctx, http.MethodDelete, base+"/saveTrips/"+r.savedID, nil)
				return res
			},
		},
		{
			Name: "Trips: delete again is 404",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.savedID == "" {
					return Result{Status: StatusSkip, Note: "nothing saved"}
				}
				res, _ := r.do(ctx, http.MethodDelete, base+"/saveTrips/"+r.savedID, nil, http.StatusNotFound)
				return res
			},
		},
	}
}

// do sends one JSON request and passes when the status is in okStatuses
// (200 when none are given).
func (r *Runner) do(ctx context.Context, method, url string, body any, okStatuses ...int) (Result, []byte) {
	if len(okStatuses) == 0 {
		okStatuses = []int{http.StatusOK}
	}
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}, nil
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}, nil
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	latency := time.Since(start)

	note := fmt.Sprintf("status=%d", resp.StatusCode)
	if contains(okStatuses, resp.StatusCode) {
		return Result{Status: StatusPass, Latency: latency, Note: note}, data
	}
	if msg := gjson.GetBytes(data, "error").String(); msg != "" {
		note += " error=" + msg
	}
	return Result{Status: StatusFail, Latency: latency, Note: note}, data
}

func expect(res Result, ok bool, failNote string) Result {
	if !ok {
		res.Status = StatusFail
		res.Note = failNote
	}
	return res
}

// concurrentSaves posts Concurrency trips at once, expects every one to be
// created with a distinct id, then deletes them.
func (r *Runner) concurrentSaves(ctx context.Context, url string) Result {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[string]bool{}
	)
	start := time.Now()
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, body := r.do(ctx, http.MethodPost, url, sampleTrip, http.StatusCreated)
			if res.Status != StatusPass {
				return
			}
			mu.Lock()
			ids[gjson.GetBytes(body, "trip._id").String()] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	latency := time.Since(start)

	for id := range ids {
		r.do(ctx, http.MethodDelete, url+"/"+id, nil)
	}
	if len(ids) != r.cfg.Concurrency {
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("distinct ids=%d want %d", len(ids), r.cfg.Concurrency)}
	}
	return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("saved=%d", len(ids))}
}

func (r *Runner) perfLoad(ctx context.Context, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var (
		count    int64
		errCount int64
		mu       sync.Mutex
		wg       sync.WaitGroup
	)

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
				resp, err := r.httpc.Do(req)
				mu.Lock()
				if err != nil || resp.StatusCode != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
				if err == nil {
					_, _ = io.Copy(io.Discard, resp.Body)
					resp.Body.Close()
				}
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
