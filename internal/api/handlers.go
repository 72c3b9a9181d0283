package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/dots"
)

// TransliterateRequest is the body of POST /v1/braille.
type TransliterateRequest struct {
	Text      string `json:"text"`
	Table     string `json:"table,omitempty"`
	Normalize bool   `json:"normalize,omitempty"`
}

// TransliterateResponse is returned by POST /v1/braille.
type TransliterateResponse struct {
	RequestID string `json:"request_id"`
	Table     string `json:"table"`
	Braille   string `json:"braille"`
}

// TablesResponse is returned by GET /v1/tables.
type TablesResponse struct {
	Tables []string `json:"tables"`
}

// LookupResponse is returned by GET /v1/tables/{name}/lookup?char=.
type LookupResponse struct {
	Char    string `json:"char"`
	Braille string `json:"braille"`
	Dots    string `json:"dots"`
	Mapped  bool   `json:"mapped"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// TransliterateHandler transcribes the text of a JSON request.
func TransliterateHandler(w http.ResponseWriter, r *http.Request) {
	var req TransliterateRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := req.Table
	if name == "" {
		name = braille.DefaultTableName
	}
	table, ok := braille.TableByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown table "+name)
		return
	}
	text := req.Text
	if req.Normalize {
		text = braille.Normalize(text)
	}
	tracer().Debugf("request %s: transliterating %d bytes with %s", RequestID(r.Context()), len(text), name)
	writeJSON(w, http.StatusOK, TransliterateResponse{
		RequestID: RequestID(r.Context()),
		Table:     name,
		Braille:   table.Transliterate(text),
	})
}

// ListTablesHandler lists registered tables, optionally filtered by ?prefix=.
func ListTablesHandler(w http.ResponseWriter, r *http.Request) {
	names := braille.TableNames(r.URL.Query().Get("prefix"))
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, TablesResponse{Tables: names})
}

// LookupHandler returns the Braille cells of the single character given
// by ?char=.
func LookupHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	table, ok := braille.TableByName(vars["name"])
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown table "+vars["name"])
		return
	}
	ch := r.URL.Query().Get("char")
	if utf8.RuneCountInString(ch) != 1 {
		writeError(w, r, http.StatusBadRequest, "expected a single character")
		return
	}
	c, _ := utf8.DecodeRuneInString(ch)
	cells, mapped := table.Lookup(c)
	resp := LookupResponse{Char: ch, Mapped: mapped}
	if mapped {
		resp.Braille = cells
		resp.Dots = dots.FormatCells(cells)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("cannot encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	tracer().Infof("request %s: %d %s", RequestID(r.Context()), status, msg)
	writeJSON(w, status, errorResponse{RequestID: RequestID(r.Context()), Error: msg})
}
