package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"banking-bpo/core/models"
	"banking-bpo/core/pipeline"
	"banking-bpo/core/samples"
)

const maxUploadSize = 10 << 20

type documentsView struct {
	Documents []models.ProcessedDocument
	Samples   []string
	Outcome   *pipeline.Outcome
}

func (s *Server) documentsData(outcome *pipeline.Outcome) (documentsView, error) {
	documents, err := s.store.ProcessedDocuments()
	if err != nil {
		return documentsView{}, err
	}
	return documentsView{
		Documents: documents,
		Samples:   samples.List(),
		Outcome:   outcome,
	}, nil
}

func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	data, err := s.documentsData(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "documents.go.html", data)
}

func (s *Server) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("failed to parse upload form", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outcome, err := s.processor.Process(r.Context(), handler.Filename, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view, err := s.documentsData(&outcome)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "documents.go.html", view)
}

func (s *Server) GenerateSamples(w http.ResponseWriter, r *http.Request) {
	if _, err := samples.Generate(s.store.DataDir()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

func (s *Server) ProcessSample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if _, err := samples.Generate(s.store.DataDir()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := samples.Read(s.store.DataDir(), name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	outcome, err := s.processor.Process(r.Context(), name, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view, err := s.documentsData(&outcome)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "documents.go.html", view)
}
