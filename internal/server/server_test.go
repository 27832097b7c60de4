package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/engine"
)

type stubGenerator struct {
	lastReq engine.Request
	path    string
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, req engine.Request) (string, error) {
	g.lastReq = req
	if g.err != nil {
		return "", g.err
	}
	return g.path, nil
}

func newTestServer(gen *stubGenerator) *Server {
	return New(gen, log.New(io.Discard))
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestCreateAppliesDefaults(t *testing.T) {
	gen := &stubGenerator{path: "outputs/lowerthird.mp4"}
	s := newTestServer(gen)

	rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	want := engine.Request{
		MainTitle:  "DataDash",
		Subtitle:   "Fortinet Community Insights",
		OutputName: "lowerthird",
		Style:      "cloud_blue",
		Duration:   4.0,
	}
	if gen.lastReq != want {
		t.Errorf("request = %+v, want %+v", gen.lastReq, want)
	}

	var resp struct {
		Status string `json:"status"`
		Video  string `json:"video"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp.Status != "ok" || resp.Video != "outputs/lowerthird.mp4" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateRejectsEmptyBody(t *testing.T) {
	gen := &stubGenerator{path: "unused"}
	s := newTestServer(gen)

	rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for empty body, body %s", rec.Code, rec.Body)
	}
	if gen.lastReq.OutputName != "" {
		t.Errorf("generator ran with defaults for an empty body: %+v", gen.lastReq)
	}
}

func TestCreateCountsTitleLimitInRunes(t *testing.T) {
	gen := &stubGenerator{path: "outputs/lowerthird.mp4"}
	s := newTestServer(gen)

	// 60 runes but 120 bytes; must pass a 100-character limit.
	title := strings.Repeat("ü", 60)
	rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", `{"main_title":"`+title+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d for 60-rune multibyte title, body %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, s, http.MethodPost, "/create-lowerthird", `{"main_title":"`+strings.Repeat("ü", 101)+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for 101-rune title, want 400", rec.Code)
	}
}

func TestCreatePassesThroughFields(t *testing.T) {
	gen := &stubGenerator{path: "outputs/promo.mp4"}
	s := newTestServer(gen)

	body := `{"main_title":"Launch Day","subtitle":"Live at noon","output_name":"promo","duration":2.5,"style":"secure_red","badge_url":"https://example.com"}`
	rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if gen.lastReq.MainTitle != "Launch Day" || gen.lastReq.Duration != 2.5 {
		t.Errorf("request = %+v", gen.lastReq)
	}
	if gen.lastReq.Style != "secure_red" || gen.lastReq.BadgeURL != "https://example.com" {
		t.Errorf("request = %+v", gen.lastReq)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"main_title": `},
		{"zero duration", `{"duration": 0}`},
		{"negative duration", `{"duration": -3}`},
		{"overlong title", `{"main_title":"` + strings.Repeat("x", 101) + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{path: "unused"}
			s := newTestServer(gen)
			rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", rec.Code, rec.Body)
			}
			if gen.lastReq.OutputName != "" {
				t.Error("generator must not run for rejected input")
			}
		})
	}
}

func TestCreateHidesEncoderFailure(t *testing.T) {
	gen := &stubGenerator{err: apperr.New(apperr.CodeEncoderOpen, "ffmpeg start: exec: not found")}
	s := newTestServer(gen)

	rec := doJSON(t, s, http.MethodPost, "/create-lowerthird", "{}")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "ffmpeg") {
		t.Errorf("internal detail leaked: %s", rec.Body)
	}
}

func TestStyles(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	rec := doJSON(t, s, http.MethodGet, "/styles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	styles := resp["styles"]
	if len(styles) != 4 {
		t.Fatalf("styles = %v, want 4 entries", styles)
	}
	found := false
	for _, s := range styles {
		if s == "cloud_blue" {
			found = true
		}
	}
	if !found {
		t.Errorf("cloud_blue missing from %v", styles)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	rec := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}
