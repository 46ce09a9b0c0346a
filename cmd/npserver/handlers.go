package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/npillmayer/npchunk/cfg"
	"github.com/npillmayer/npchunk/cfg/chart"
	"github.com/npillmayer/npchunk/cfg/scanner"
	"github.com/npillmayer/npchunk/cfg/tree"
	"github.com/npillmayer/npchunk/mining"
)

// ---- JSON response types ------------------------------------------------

type grammarResponse struct {
	Name        string                 `json:"name"`
	Start       string                 `json:"start"`
	Fingerprint string                 `json:"fingerprint"`
	Rules       int                    `json:"rules"`
	Text        string                 `json:"text"`
	Conflicts   []mining.TokenConflict `json:"conflicts,omitempty"`
}

type treeJSON struct {
	Bracketed string     `json:"bracketed"`
	Chunks    [][]string `json:"chunks"`
}

type parseResponse struct {
	Tokens    []string         `json:"tokens"`
	Status    string           `json:"status"`
	Trees     []treeJSON       `json:"trees,omitempty"`
	Truncated bool             `json:"truncated,omitempty"`
	Diagnosis *chart.Diagnosis `json:"diagnosis,omitempty"`
}

type tagResponse struct {
	Tokens []string `json:"tokens"`
	Tags   []string `json:"tags"`
}

type ngramsResponse struct {
	Sentences int                            `json:"sentences"`
	Ngrams    map[string][]mining.NgramCount `json:"ngrams"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sentenceRequest struct {
	Sentence string `json:"sentence"`
}

type ngramsRequest struct {
	Sentences []string `json:"sentences"`
	Min       int      `json:"min"`
	Max       int      `json:"max"`
	Top       int      `json:"top"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeSentence(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return nil, false
	}
	var body sentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Sentence == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
		return nil, false
	}
	tokens, err := scanner.Preprocess(body.Sentence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return tokens, true
}

// ---- handlers -----------------------------------------------------------

// server holds the read-only state shared by all requests.
type server struct {
	grammar      *cfg.Grammar
	parser       *chart.Parser
	table        *mining.TagTable
	unknown      string
	maxSentences int
	maxNgram     int // longest n-gram a client may request
}

func newServer(g *cfg.Grammar, maxTrees int, unknown string, maxSentences, maxNgram int) *server {
	return &server{
		grammar:      g,
		parser:       chart.NewParser(g, chart.MaxTrees(maxTrees)),
		table:        mining.BuildTagTable(g),
		unknown:      unknown,
		maxSentences: maxSentences,
		maxNgram:     maxNgram,
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/grammar", s.handleGrammar)
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/tag", s.handleTag)
	mux.HandleFunc("/api/ngrams", s.handleNgrams)
	return mux
}

func (s *server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, grammarResponse{
		Name:        s.grammar.Name,
		Start:       s.grammar.Start(),
		Fingerprint: s.grammar.Fingerprint(),
		Rules:       s.grammar.Size(),
		Text:        s.grammar.String(),
		Conflicts:   s.table.Conflicts(),
	})
}

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	tokens, ok := decodeSentence(w, r)
	if !ok {
		return
	}
	if len(tokens) == 0 {
		writeError(w, http.StatusBadRequest, "sentence contains no words")
		return
	}
	result, err := s.parser.Parse(tokens)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := parseResponse{
		Tokens:    tokens,
		Status:    result.Status.String(),
		Truncated: result.Truncated,
		Diagnosis: result.Diagnosis,
	}
	for _, t := range result.Trees {
		resp.Trees = append(resp.Trees, treeJSON{
			Bracketed: t.String(),
			Chunks:    tree.ChunkTokens(t),
		})
	}
	status := http.StatusOK
	if !result.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (s *server) handleTag(w http.ResponseWriter, r *http.Request) {
	tokens, ok := decodeSentence(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, tagResponse{
		Tokens: tokens,
		Tags:   mining.Tag(tokens, s.table, s.unknown),
	})
}

func (s *server) handleNgrams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body ngramsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Sentences) == 0 {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentences' list")
		return
	}
	if s.maxSentences > 0 && len(body.Sentences) > s.maxSentences {
		writeError(w, http.StatusRequestEntityTooLarge, "too many sentences, limit is "+strconv.Itoa(s.maxSentences))
		return
	}
	if body.Min <= 0 {
		body.Min = 2
	}
	if body.Max < body.Min {
		body.Max = body.Min
	}
	if body.Max > s.maxNgram {
		writeError(w, http.StatusBadRequest, "n-grams are limited to length "+strconv.Itoa(s.maxNgram))
		return
	}
	m := mining.NewMiner(s.grammar, mining.Range(body.Min, body.Max), mining.UnknownTag(s.unknown))
	if err := m.MineCorpus(r.Context(), mining.SliceCorpus(body.Sentences)); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := ngramsResponse{
		Sentences: m.Sentences(),
		Ngrams:    make(map[string][]mining.NgramCount),
	}
	for n, top := range m.Report(body.Top) {
		resp.Ngrams[strconv.Itoa(n)] = top
	}
	writeJSON(w, http.StatusOK, resp)
}
