package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"GoTokenize/internal/classify"
	"GoTokenize/internal/segment"
	"GoTokenize/internal/stopwords"
	"GoTokenize/internal/token"
	"GoTokenize/internal/tokenizer"
)

// maxBodyBytes bounds request bodies so a single request cannot make the
// server allocate without limit.
const maxBodyBytes = 1 << 20 // 1MB

// maxLemmas bounds the number of lemmas in one /classify request.
const maxLemmas = 10_000

// Handler holds HTTP handlers for the GoTokenize API.
type Handler struct {
	segmenters       *segment.Registry
	defaultSegmenter string
	stopWords        *stopwords.Source
	version          string
	logger           *slog.Logger
}

// NewHandler creates a Handler. stopWords may be nil to disable stop words.
func NewHandler(segmenters *segment.Registry, defaultSegmenter string, stopWords *stopwords.Source, version string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if stopWords == nil {
		stopWords = stopwords.NewStaticSource(nil)
	}
	return &Handler{
		segmenters:       segmenters,
		defaultSegmenter: defaultSegmenter,
		stopWords:        stopWords,
		version:          version,
		logger:           logger,
	}
}

// RegisterRoutes registers all API routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleInfo)
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	r.Post("/tokenize", h.handleTokenize)
	r.Post("/classify", h.handleClassify)
	r.Get("/stopwords", h.handleStopWords)
}

// tokenJSON is the wire form of a classified token.
type tokenJSON struct {
	Lemma     string     `json:"lemma"`
	Kind      token.Kind `json:"kind"`
	ByteStart int        `json:"byte_start"`
	ByteEnd   int        `json:"byte_end"`
	CharStart int        `json:"char_start"`
	CharEnd   int        `json:"char_end"`
}

type tokenizeRequest struct {
	Text      string `json:"text"`
	Segmenter string `json:"segmenter"`
	WordsOnly bool   `json:"words_only"`
}

func (h *Handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	name := req.Segmenter
	if name == "" {
		name = h.defaultSegmenter
	}
	seg, err := h.segmenters.Get(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tk := tokenizer.FromSet(seg, h.stopWords.Current())
	tokens := make([]tokenJSON, 0)
	for tok := range tk.Tokenize(req.Text).All() {
		if req.WordsOnly && !tok.IsWord() {
			continue
		}
		tokens = append(tokens, tokenJSON{
			Lemma:     tok.Lemma,
			Kind:      tok.Kind,
			ByteStart: tok.ByteStart,
			ByteEnd:   tok.ByteEnd,
			CharStart: tok.CharStart,
			CharEnd:   tok.CharEnd,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segmenter": name,
		"count":     len(tokens),
		"tokens":    tokens,
	})
}

type classifyRequest struct {
	Lemmas []string `json:"lemmas"`
}

type classifiedLemma struct {
	Lemma string     `json:"lemma"`
	Kind  token.Kind `json:"kind"`
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Lemmas) > maxLemmas {
		writeError(w, http.StatusRequestEntityTooLarge, "too many lemmas")
		return
	}

	var c classify.Classifier
	if set := h.stopWords.Current(); set != nil {
		c = classify.New(set)
	}

	out := make([]classifiedLemma, len(req.Lemmas))
	for i, lemma := range req.Lemmas {
		tok := c.Classify(token.Token{Lemma: lemma})
		out[i] = classifiedLemma{Lemma: lemma, Kind: tok.Kind}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": out,
	})
}

func (h *Handler) handleStopWords(w http.ResponseWriter, r *http.Request) {
	set := h.stopWords.Current()
	resp := map[string]interface{}{
		"count":   set.Len(),
		"path":    h.stopWords.Path(),
		"reloads": h.stopWords.Reloads(),
	}
	if set != nil {
		resp["checksum"] = string(set.Checksum())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":       "GoTokenize",
		"version":    h.version,
		"segmenters": h.segmenters.Names(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// decodeBody decodes a bounded JSON body into v, writing the error response
// itself when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
