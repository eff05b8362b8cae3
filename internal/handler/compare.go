package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vortex/docx-compare/internal/compare"
	"github.com/vortex/docx-compare/internal/service"
	"github.com/vortex/docx-compare/internal/worddiff"
	"github.com/vortex/docx-compare/pkg/response"
)

// CompareHandler exposes HTTP endpoints for the document-compare service.
type CompareHandler struct {
	svc service.CompareService
}

// NewCompareHandler creates a handler backed by the given service.
func NewCompareHandler(svc service.CompareService) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// Open handles POST /api/v1/documents/open.
// Accepts a multipart form with a "file" field containing a .docx and
// returns JSON metadata about the parsed document.
func (h *CompareHandler) Open(w http.ResponseWriter, r *http.Request) {
	data, err := readUploadedFile(r, "file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.svc.Open(data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, service.ErrParse) {
			status = http.StatusBadRequest
		}
		response.Error(w, status, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"paragraphCount": len(doc.ParagraphsFlat()),
		"sectionCount":   len(doc.Sections),
		"styleCount":     len(doc.Styles),
	})
}

// Validate handles POST /api/v1/documents/validate.
// Round-trips the uploaded document through parse and regenerate and
// reports whether it comes back out structurally sound.
func (h *CompareHandler) Validate(w http.ResponseWriter, r *http.Request) {
	data, err := readUploadedFile(r, "file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Validate(data); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, service.ErrParse) {
			status = http.StatusBadRequest
		}
		response.Error(w, status, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "valid"})
}

// Compare handles POST /api/v1/documents/compare.
// Accepts a multipart form with "original" and "modified" .docx fields plus
// optional option flags, and returns the redlined .docx as the response
// body with the change statistics in the X-Insertions, X-Deletions, and
// X-Moves response headers.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	original, err := readUploadedFile(r, "original")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "original: "+err.Error())
		return
	}
	modified, err := readUploadedFile(r, "modified")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "modified: "+err.Error())
		return
	}

	if format := r.FormValue("format"); format != "" && format != "word" {
		response.Error(w, http.StatusBadRequest, service.ErrUnsupportedOutput.Error())
		return
	}

	opts := compare.DefaultOptions()
	opts.DetectMoves = r.FormValue("detectMoves") == "true"
	opts.IgnoreCase = r.FormValue("ignoreCase") == "true"
	opts.IgnoreFormatting = r.FormValue("ignoreFormatting") == "true"
	if v := r.FormValue("ignoreWhitespace"); v != "" {
		opts.IgnoreWhitespace = v == "true"
	}
	switch r.FormValue("granularity") {
	case "character":
		opts.Granularity = worddiff.Character
	case "sentence":
		opts.Granularity = worddiff.Sentence
	case "paragraph":
		opts.Granularity = worddiff.Paragraph
	}

	out, err := h.svc.Compare(original, modified, opts)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, service.ErrParse) {
			status = http.StatusBadRequest
		}
		response.Error(w, status, err.Error())
		return
	}

	st := out.Statistics.Statistics
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="redline.docx"`)
	w.Header().Set("X-Insertions", strconv.Itoa(st.Insertions))
	w.Header().Set("X-Deletions", strconv.Itoa(st.Deletions))
	w.Header().Set("X-Moves", strconv.Itoa(st.Moves))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.RedlinedDocx)
}

// readUploadedFile extracts the bytes of the named multipart form field.
func readUploadedFile(r *http.Request, field string) ([]byte, error) {
	if err := r.ParseMultipartForm(100 << 20); err != nil { // up to 100 MB held in memory; larger parts go to temp files
		return nil, err
	}

	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
