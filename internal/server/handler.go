package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/alexiusacademia/gorsd/internal/diagram"
	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/alexiusacademia/gorsd/internal/report"
	"github.com/alexiusacademia/gorsd/internal/section"
)

// DesignRequest is the body of every design endpoint.
// Omitted fields keep the form defaults.
type DesignRequest struct {
	geomech.DesignInput
	Project string `json:"project,omitempty"`
	Author  string `json:"author,omitempty"`
}

// DesignResponse bundles everything the form displays
type DesignResponse struct {
	Input   geomech.DesignInput      `json:"input"`
	Result  *geomech.DesignResult    `json:"result"`
	Metrics []geomech.Metric         `json:"metrics"`
	Scene   *section.SectionGeometry `json:"scene"`
}

// DefaultsResponse describes the input form
type DefaultsResponse struct {
	Input  geomech.DesignInput `json:"input"`
	Fields []geomech.FieldInfo `json:"fields"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// MaxRequestBytes caps the size of a request body
const MaxRequestBytes = 1 << 20

// Handler serves the design API
type Handler struct {
	Logger *log.Logger
}

// Defaults returns the form defaults and the help text of every field
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, DefaultsResponse{Input: geomech.DefaultInput(), Fields: geomech.Fields})
}

// Design computes the result and the section scene for the posted input
func (h *Handler) Design(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, scene, err := design(req.DesignInput)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, DesignResponse{
		Input:   req.DesignInput,
		Result:  res,
		Metrics: res.Metrics(),
		Scene:   scene,
	})
}

// Diagram renders the section as png, svg or pdf
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if _, ok := contentTypes[format]; !ok || format == "xlsx" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported format " + format, Field: "format"})
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, scene, err := design(req.DesignInput)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := diagram.WriteSectionDiagram(scene, res.Metrics(), &buf, format); err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Write(buf.Bytes())
}

// Report builds the pdf or xlsx design sheet
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}
	if format != "pdf" && format != "xlsx" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported format " + format, Field: "format"})
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, scene, err := design(req.DesignInput)
	if err != nil {
		h.writeError(w, err)
		return
	}

	doc := report.Document{
		Project: req.Project,
		Author:  req.Author,
		Input:   req.DesignInput,
		Result:  res,
	}

	var buf bytes.Buffer
	if format == "pdf" {
		var img bytes.Buffer
		if err := diagram.WriteSectionDiagram(scene, res.Metrics(), &img, "png"); err != nil {
			h.writeError(w, err)
			return
		}
		doc.Diagram = img.Bytes()
		err = report.WritePDF(&buf, doc)
	} else {
		err = report.WriteXLSX(&buf, doc)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", "attachment; filename=\"design."+format+"\"")
	w.Write(buf.Bytes())
}

// design runs the calculator and the renderer
func design(in geomech.DesignInput) (*geomech.DesignResult, *section.SectionGeometry, error) {
	res, err := in.Compute()
	if err != nil {
		return nil, nil, err
	}
	scene, err := section.Render(in.Geometry, res)
	if err != nil {
		return nil, nil, err
	}
	return res, scene, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*DesignRequest, bool) {
	req := &DesignRequest{DesignInput: geomech.DefaultInput()}
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request body too large"})
			return nil, false
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return nil, false
	}
	return req, true
}

// writeError maps calculation errors to status codes
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var inputErr *geomech.InvalidInputError
	var domainErr *geomech.NumericDomainError
	var geomErr *section.InvalidGeometryError

	switch {
	case errors.As(err, &inputErr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: inputErr.Field})
	case errors.As(err, &domainErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: domainErr.Quantity})
	case errors.As(err, &geomErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: geomErr.Field})
	default:
		if h.Logger != nil {
			h.Logger.Printf("design error: %v", err)
		}
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Calculation error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		if h.Logger != nil {
			h.Logger.Printf("encode response: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Encoding error"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
