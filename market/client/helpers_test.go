package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/config"
	"github.com/steamkit/gomarket/pkg/web"
)

// testConfig is the baseline config for client tests: near-zero
// confirmation delay so escalation tests finish fast.
func testConfig() config.Config {
	var cfg config.Config
	cfg.ConfirmationDelay.Duration = time.Millisecond
	return cfg
}

// newTestClient wires a client against an httptest server and installs a
// session context. Callers that need the pre-login state build the client
// by hand instead.
func newTestClient(t *testing.T, handler http.Handler, cfg config.Config, extractor PageExtractor, confirmer ConfirmationService) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session, err := web.NewSession(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	cfg.CommunityURL = srv.URL
	c := New(session, cfg, extractor, confirmer)
	c.SetLoginExecuted(types.Guard{SteamID: "76561198000000000", IdentitySecret: "identity-secret"}, "sessid-test")
	return c
}

// recordedRequest is one captured server hit: method, path, decoded query
// and form values, and headers of interest.
type recordedRequest struct {
	Method  string
	Path    string
	Query   map[string]string
	Form    map[string]string
	Referer string
}

// recorder captures every request and serves scripted responses in order,
// repeating the last one when the script runs out.
type recorder struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses []scriptedResponse
}

type scriptedResponse struct {
	status int
	body   string
}

func newRecorder(responses ...scriptedResponse) *recorder {
	return &recorder{responses: responses}
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	_ = r.ParseForm()
	rr := recordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   map[string]string{},
		Form:    map[string]string{},
		Referer: r.Header.Get("Referer"),
	}
	for k := range r.URL.Query() {
		rr.Query[k] = r.URL.Query().Get(k)
	}
	for k := range r.PostForm {
		rr.Form[k] = r.PostForm.Get(k)
	}
	rec.requests = append(rec.requests, rr)

	resp := scriptedResponse{status: http.StatusOK, body: "{}"}
	if len(rec.responses) > 0 {
		i := len(rec.requests) - 1
		if i >= len(rec.responses) {
			i = len(rec.responses) - 1
		}
		resp = rec.responses[i]
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}

func (rec *recorder) request(i int) recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.requests[i]
}

// stubExtractor serves canned landing pages and delegates render fragments
// to an optional function so tests can vary batches per call.
type stubExtractor struct {
	landing    *ListingPage
	landingErr error
	fragments  func(resultsHTML, hovers string) ([]types.RawListing, map[string]types.AssetRef, error)
}

func (s *stubExtractor) LandingPage(html string) (*ListingPage, error) {
	if s.landingErr != nil {
		return nil, s.landingErr
	}
	if s.landing != nil {
		return s.landing, nil
	}
	return &ListingPage{}, nil
}

func (s *stubExtractor) RenderFragments(resultsHTML, hovers string) ([]types.RawListing, map[string]types.AssetRef, error) {
	if s.fragments != nil {
		return s.fragments(resultsHTML, hovers)
	}
	return nil, nil, nil
}
