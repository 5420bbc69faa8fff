// Package apitest serves a fake study api for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Fake answers listing and chart requests from canned json.
// Items are raw json objects so field order is under the test's control.
type Fake struct {
	Items  []string
	Series map[string]string // chart path -> raw json body
	Fail   map[string]int    // path -> status code to answer with

	mu       sync.Mutex
	requests []url.URL
	server   *httptest.Server
}

// Start serves the fake until Close.
func (fk *Fake) Start() *Fake {

	router := chi.NewRouter()
	router.Use(fk.record)
	router.Get("/all_studies", fk.listing)
	router.Get("/query", fk.listing)
	router.Get("/plotly/*", fk.series)

	fk.server = httptest.NewServer(router)
	return fk
}

// URL returns the base url of the fake.
func (fk *Fake) URL() string {
	return fk.server.URL
}

// Close stops the fake.
func (fk *Fake) Close() {
	fk.server.Close()
}

// Requests returns the request urls received so far.
func (fk *Fake) Requests() []url.URL {
	fk.mu.Lock()
	defer fk.mu.Unlock()

	return append([]url.URL{}, fk.requests...)
}

// Last returns the most recent request url.
func (fk *Fake) Last() *url.URL {
	reqs := fk.Requests()
	if len(reqs) == 0 {
		return &url.URL{}
	}
	return &reqs[len(reqs)-1]
}

// SetFail answers requests for path with status from now on, zero to stop failing.
func (fk *Fake) SetFail(path string, status int) {
	fk.mu.Lock()
	defer fk.mu.Unlock()

	if fk.Fail == nil {
		fk.Fail = map[string]int{}
	}
	fk.Fail[path] = status
}

// Find returns the first request for path whose query has every given pair.
func (fk *Fake) Find(path string, kv ...string) *url.URL {

	for _, req := range fk.Requests() {
		if req.Path != path {
			continue
		}

		values := req.Query()
		match := true
		for i := 0; i+1 < len(kv); i += 2 {
			if values.Get(kv[i]) != kv[i+1] {
				match = false
				break
			}
		}
		if match {
			return &req
		}
	}
	return nil
}

// unexported

func (fk *Fake) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		fk.mu.Lock()
		fk.requests = append(fk.requests, *r.URL)
		status := fk.Fail[r.URL.Path]
		fk.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// listing pages through Items; the filter itself is only recorded
func (fk *Fake) listing(w http.ResponseWriter, r *http.Request) {

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}

	start := min((page-1)*size, len(fk.Items))
	end := min(start+size, len(fk.Items))

	body := `{"total":` + strconv.Itoa(len(fk.Items)) + `,"items":[` +
		strings.Join(fk.Items[start:end], ",") + `]}`

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (fk *Fake) series(w http.ResponseWriter, r *http.Request) {

	body, ok := fk.Series[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
