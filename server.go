package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

//go:embed frontend
var frontendFS embed.FS

const maxUploadSize = 10 << 20 // 10 Mo

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Server is the main HTTP server.
type Server struct {
	mux      *http.ServeMux
	store    WorksheetStore
	reader   AnswerReader
	pdf      *PDFRenderer
	tex      *TeXRenderer
	events   *EventHub
	createRL *rateLimiter
	gradeRL  *rateLimiter
}

// NewServer creates a configured HTTP server. reader may be nil, in which
// case grading is disabled.
func NewServer(store WorksheetStore, reader AnswerReader, pdf *PDFRenderer) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		store:    store,
		reader:   reader,
		pdf:      pdf,
		tex:      NewTeXRenderer(),
		events:   NewEventHub(),
		createRL: newRateLimiter(10, time.Minute), // 10 worksheets/min per IP
		gradeRL:  newRateLimiter(5, time.Minute),  // 5 photos/min per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/worksheets", s.handleCreateWorksheet)
	s.mux.HandleFunc("GET /api/worksheets", s.handleListWorksheets)
	s.mux.HandleFunc("GET /api/worksheets/{id}", s.handleGetWorksheet)
	s.mux.HandleFunc("GET /api/worksheets/{id}/pdf", s.handleWorksheetPDF)
	s.mux.HandleFunc("GET /api/worksheets/{id}/tex", s.handleWorksheetTeX)
	s.mux.HandleFunc("POST /api/worksheets/{id}/grade", s.handleGradeWorksheet)
	s.mux.HandleFunc("GET /api/worksheets/{id}/events", s.handleWorksheetEvents)

	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	s.mux.Handle("GET /", http.FileServer(http.FS(frontendDir)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// Close stops the background work of the rate limiters.
func (s *Server) Close() {
	s.createRL.stop()
	s.gradeRL.stop()
}

// --- Worksheet handlers ---

// POST /api/worksheets: generate and save a worksheet.
func (s *Server) handleCreateWorksheet(w http.ResponseWriter, r *http.Request) {
	if !s.createRL.allowRequest(r) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	var req struct {
		WorksheetRequest
		Seed *uint64 `json:"seed"`
	}
	req.WorksheetRequest = WorksheetRequest{Rows: 5, Cols: 4, Config: DefaultConfig()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Requête invalide", http.StatusBadRequest)
		return
	}
	if req.Seed != nil {
		req.WorksheetRequest.Seed = *req.Seed
	} else {
		req.WorksheetRequest.Seed = rand.Uint64()
	}
	if req.Title == "" {
		req.Title = DefaultTitle(req.Operation)
	}
	if req.Rows > maxCells || req.Cols > maxCells || req.Rows*req.Cols > maxCells {
		jsonError(w, fmt.Sprintf("Grille trop grande (max %d cases)", maxCells), http.StatusBadRequest)
		return
	}

	ws, err := NewWorksheet(req.WorksheetRequest)
	if err != nil {
		jsonError(w, "Configuration invalide : "+strings.TrimPrefix(err.Error(), ErrInvalidConfiguration.Error()+": "), http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), ws); err != nil {
		log.Printf("[ERROR] save worksheet: %v", err)
		jsonError(w, "Erreur d'enregistrement de la fiche", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, ws)
}

// GET /api/worksheets: list all worksheets.
func (s *Server) handleListWorksheets(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] list worksheets: %v", err)
		jsonError(w, "Erreur de lecture des fiches", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/worksheets/{id}: get a single worksheet.
func (s *Server) handleGetWorksheet(w http.ResponseWriter, r *http.Request) {
	ws, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// GET /api/worksheets/{id}/pdf: problems and answer key as PDF.
func (s *Server) handleWorksheetPDF(w http.ResponseWriter, r *http.Request) {
	s.serveRendered(w, r, s.pdf, "application/pdf")
}

// GET /api/worksheets/{id}/tex: problems and answer key as LaTeX.
func (s *Server) handleWorksheetTeX(w http.ResponseWriter, r *http.Request) {
	s.serveRendered(w, r, s.tex, "application/x-tex")
}

func (s *Server) serveRendered(w http.ResponseWriter, r *http.Request, renderer Renderer, contentType string) {
	ws, ok := s.lookup(w, r)
	if !ok {
		return
	}
	doc, err := ws.Document()
	if err != nil {
		log.Printf("[ERROR] layout worksheet %s: %v", ws.ID, err)
		jsonError(w, "Erreur de mise en page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		log.Printf("[ERROR] render worksheet %s: %v", ws.ID, err)
		jsonError(w, "Erreur de génération du document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "worksheet-"+ws.ID+renderer.Extension()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[ERROR] writing %s to response: %v", renderer.Extension(), err)
	}
}

// POST /api/worksheets/{id}/grade: read answers from a photo and score them.
func (s *Server) handleGradeWorksheet(w http.ResponseWriter, r *http.Request) {
	if !s.gradeRL.allowRequest(r) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	if s.reader == nil {
		jsonError(w, "Correction par photo non configurée", http.StatusServiceUnavailable)
		return
	}

	ws, ok := s.lookup(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, "Image trop volumineuse (max 10 Mo)", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, "Champ 'image' requis", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedMIME[mimeType] {
		jsonError(w, "Format accepté : JPEG ou PNG", http.StatusBadRequest)
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "Erreur de lecture de l'image", http.StatusInternalServerError)
		return
	}

	answers, err := s.reader.ReadAnswers(r.Context(), ws, imageData, mimeType)
	if err != nil {
		log.Printf("Gemini read answers error: %v", err)
		jsonError(w, "Erreur lors de la lecture des réponses", http.StatusInternalServerError)
		return
	}

	grade := Score(ws, answers)
	s.events.Publish(ws.ID, Event{Type: "graded", Data: grade})

	writeJSON(w, http.StatusOK, grade)
}

// GET /api/worksheets/{id}/events: SSE stream of grading results.
func (s *Server) handleWorksheetEvents(w http.ResponseWriter, r *http.Request) {
	ws, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.events.ServeSSE(w, r, ws.ID, &Event{Type: "worksheet", Data: ws})
}

// --- Helpers ---

// lookup loads the worksheet named by the {id} path value, answering 404 or
// 500 itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*Worksheet, bool) {
	ws, err := s.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		jsonError(w, "Fiche introuvable", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("[ERROR] get worksheet: %v", err)
		jsonError(w, "Erreur de lecture de la fiche", http.StatusInternalServerError)
		return nil, false
	}
	return ws, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
