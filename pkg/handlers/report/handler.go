package report

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/adhavannn/ai-report-generator/pkg/adapters"
	"github.com/adhavannn/ai-report-generator/pkg/models/api"
	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/rs/zerolog"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// Handler exposes the report pipeline over HTTP: a JSON envelope endpoint
// for the interactive surface and a raw PDF endpoint for downloads.
type Handler struct {
	pipeline       *report.Controller
	currencySymbol string
}

func NewHandler(pipeline *report.Controller, currencySymbol string) *Handler {
	return &Handler{pipeline: pipeline, currencySymbol: currencySymbol}
}

// GenerateReport handles POST /api/v1/reports. Multipart form: "file"
// (required upload), "email" (optional recipient). Runs the full pipeline
// and returns the JSON envelope including the base64 PDF.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	file, filename, to, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.pipeline.Run(ctx, file, filename)
	if err != nil {
		h.writeError(w, r, result, err)
		return
	}

	_, pdfBytes, err := h.pipeline.BuildPDF(result)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build PDF")
		h.writeError(w, r, nil, err)
		return
	}

	h.pipeline.Deliver(ctx, result, to, pdfBytes)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapRunResultDomainToApi(result, pdfBytes, h.currencySymbol)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report envelope")
	}
}

// DownloadPDF handles POST /api/v1/reports/pdf with the same form fields
// and responds with the raw document. A delivery failure surfaces in the
// X-Delivery-Warning header; the download itself is unaffected.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, filename, to, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.pipeline.Run(ctx, file, filename)
	if err != nil {
		h.writeError(w, r, result, err)
		return
	}

	_, pdfBytes, err := h.pipeline.BuildPDF(result)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	h.pipeline.Deliver(ctx, result, to, pdfBytes)
	if warning, ok := result.Warnings[report.WarningDelivery]; ok {
		w.Header().Set("X-Delivery-Warning", warning)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="business_report.pdf"`)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (multipart.File, string, string, bool) {
	logger := zerolog.Ctx(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(w, r, nil, &domain.UnreadableFileError{Filename: "upload", Err: err})
		return nil, "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn().Err(err).Msg("upload without file field")
		h.writeError(w, r, nil, &domain.UnreadableFileError{Filename: "upload", Err: err})
		return nil, "", "", false
	}

	return file, header.Filename, r.FormValue("email"), true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, result *domain.RunResult, err error) {
	logger := zerolog.Ctx(r.Context())

	body := api.Error{
		Kind:    domain.ErrorKind(err),
		Message: err.Error(),
	}

	status := http.StatusBadRequest
	var missing *domain.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		body.Missing = missing.Missing
		body.Accepted = missing.Accepted
		if result != nil && result.Table != nil {
			preview := adapters.MapTablePreviewDomainToApi(result.Table)
			body.Preview = &preview
		}
	case body.Kind == "internal":
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		logger.Error().Err(encodeErr).Msg("failed to encode error response")
	}
}
