package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type key struct {
	Method string
	Path   string
	Status int
}

type stat struct {
	Count     int64
	LatencyMS float64
}

// Collector keeps in-process request stats plus quiz lifecycle counters and
// exposes them as plaintext metrics.
type Collector struct {
	bankSize func() int

	mu            sync.RWMutex
	requestStats  map[key]stat
	examsStarted  int64
	examsFinished int64
	startedAt     time.Time
}

// NewCollector takes a supplier for the current question-bank size so the
// gauge never goes stale.
func NewCollector(bankSize func() int) *Collector {
	return &Collector{
		bankSize:     bankSize,
		requestStats: make(map[key]stat),
		startedAt:    time.Now(),
	}
}

func (c *Collector) ExamStarted() {
	c.mu.Lock()
	c.examsStarted++
	c.mu.Unlock()
}

func (c *Collector) ExamFinished() {
	c.mu.Lock()
	c.examsFinished++
	c.mu.Unlock()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records per-route stats and emits one structured JSON log line
// per request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		latencyMS := float64(time.Since(start).Microseconds()) / 1000.0
		path := normalizedPath(r.URL.Path)

		c.mu.Lock()
		k := key{Method: r.Method, Path: path, Status: rec.status}
		s := c.requestStats[k]
		s.Count++
		s.LatencyMS += latencyMS
		c.requestStats[k] = s
		c.mu.Unlock()

		entry := map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       path,
			"status":     rec.status,
			"latency_ms": latencyMS,
			"remote_ip":  strings.TrimSpace(r.RemoteAddr),
		}
		b, _ := json.Marshal(entry)
		log.Printf("%s", string(b))
	})
}

func (c *Collector) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	statsCopy := make(map[key]stat, len(c.requestStats))
	for k, v := range c.requestStats {
		statsCopy[k] = v
	}
	started := c.examsStarted
	finished := c.examsFinished
	startedAt := c.startedAt
	c.mu.RUnlock()

	keys := make([]key, 0, len(statsCopy))
	for k := range statsCopy {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Method != keys[j].Method {
			return keys[i].Method < keys[j].Method
		}
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		return keys[i].Status < keys[j].Status
	})

	var sb strings.Builder
	sb.WriteString("# refquiz metrics\n")
	sb.WriteString("# TYPE refquiz_uptime_seconds gauge\n")
	sb.WriteString(fmt.Sprintf("refquiz_uptime_seconds %.0f\n", time.Since(startedAt).Seconds()))

	if c.bankSize != nil {
		sb.WriteString("# TYPE refquiz_bank_questions gauge\n")
		sb.WriteString(fmt.Sprintf("refquiz_bank_questions %d\n", c.bankSize()))
	}

	sb.WriteString("# TYPE refquiz_exams_started_total counter\n")
	sb.WriteString(fmt.Sprintf("refquiz_exams_started_total %d\n", started))
	sb.WriteString("# TYPE refquiz_exams_finished_total counter\n")
	sb.WriteString(fmt.Sprintf("refquiz_exams_finished_total %d\n", finished))

	sb.WriteString("# TYPE refquiz_http_requests_total counter\n")
	sb.WriteString("# TYPE refquiz_http_request_latency_ms_sum counter\n")
	for _, k := range keys {
		s := statsCopy[k]
		labels := fmt.Sprintf("method=%q,path=%q,status=\"%d\"", k.Method, k.Path, k.Status)
		sb.WriteString(fmt.Sprintf("refquiz_http_requests_total{%s} %d\n", labels, s.Count))
		sb.WriteString(fmt.Sprintf("refquiz_http_request_latency_ms_sum{%s} %.3f\n", labels, s.LatencyMS))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sb.String()))
}

// normalizedPath collapses the category key segment so the metric label set
// stays bounded.
func normalizedPath(path string) string {
	if path == "" {
		return "/"
	}
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts); i++ {
		if parts[i] == "categories" && i+1 < len(parts) && parts[i+1] != "" {
			parts[i+1] = "{key}"
		}
	}
	return strings.Join(parts, "/")
}
