package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/npillmayer/braille"
)

func serve(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, "GET", "/health", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "OK" {
		t.Fatalf("health: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected a request ID header")
	}
}

func TestTransliterateHandler(t *testing.T) {
	rec := serve(t, "POST", "/v1/braille", `{"text":"Hi, Bob!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp TransliterateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Braille != "⠠⠓⠊⠂⠀⠠⠃⠕⠃⠖" {
		t.Fatalf("unexpected Braille %q", resp.Braille)
	}
	if resp.Table != braille.DefaultTableName {
		t.Fatalf("unexpected table %q", resp.Table)
	}
	if resp.RequestID == "" || resp.RequestID != rec.Header().Get(RequestIDHeader) {
		t.Fatalf("request ID mismatch: body %q, header %q", resp.RequestID, rec.Header().Get(RequestIDHeader))
	}
}

func TestTransliterateHandlerKeepsClientRequestID(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/braille", strings.NewReader(`{"text":"a"}`))
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected client request ID, got %q", got)
	}
}

func TestTransliterateHandlerNormalize(t *testing.T) {
	rec := serve(t, "POST", "/v1/braille", `{"text":"e\u0301","normalize":true}`)
	var resp TransliterateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Braille != "\u00e9" {
		t.Fatalf("expected composed passthrough, got %q", resp.Braille)
	}
}

func TestTransliterateHandlerErrors(t *testing.T) {
	tests := []struct {
		body string
		code int
	}{
		{body: `{"text":`, code: http.StatusBadRequest},
		{body: `{"text":"a","table":"no-such-table"}`, code: http.StatusNotFound},
		{body: `{"text":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, code: http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		rec := serve(t, "POST", "/v1/braille", tt.body)
		if rec.Code != tt.code {
			t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
		}
	}
}

func TestListTables(t *testing.T) {
	rec := serve(t, "GET", "/v1/tables?prefix=en", "")
	var resp TablesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, name := range resp.Tables {
		found = found || name == braille.DefaultTableName
	}
	if !found {
		t.Fatalf("default table missing from %v", resp.Tables)
	}
	rec = serve(t, "GET", "/v1/tables?prefix=qq", "")
	if strings.TrimSpace(rec.Body.String()) != `{"tables":[]}` {
		t.Fatalf("expected empty list, got %s", rec.Body.String())
	}
}

func lookup(t *testing.T, table, ch string) (*httptest.ResponseRecorder, LookupResponse) {
	t.Helper()
	rec := serve(t, "GET", "/v1/tables/"+table+"/lookup?char="+url.QueryEscape(ch), "")
	var resp LookupResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
	}
	return rec, resp
}

func TestLookupHandler(t *testing.T) {
	tests := []struct {
		char    string
		braille string
		dots    string
	}{
		{char: "(", braille: "⠐⠣", dots: "5-126"},
		{char: "/", braille: "⠸⠌", dots: "456-34"},
		{char: ".", braille: "⠲", dots: "256"},
		{char: "?", braille: "⠦", dots: "236"},
		{char: "&", braille: "", dots: ""},
		{char: "A", braille: "⠠⠁", dots: "6-1"},
	}
	for _, tt := range tests {
		rec, resp := lookup(t, braille.DefaultTableName, tt.char)
		if rec.Code != http.StatusOK {
			t.Fatalf("lookup of %q: expected 200, got %d", tt.char, rec.Code)
		}
		if resp.Char != tt.char || resp.Braille != tt.braille || resp.Dots != tt.dots || resp.Mapped != (tt.braille != "") {
			t.Fatalf("lookup of %q: unexpected %+v", tt.char, resp)
		}
	}
	if rec, _ := lookup(t, braille.DefaultTableName, "ab"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for two characters, got %d", rec.Code)
	}
	if rec, _ := lookup(t, braille.DefaultTableName, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing character, got %d", rec.Code)
	}
	if rec, _ := lookup(t, "nope", "a"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown table, got %d", rec.Code)
	}
}
