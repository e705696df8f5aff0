package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/p2ppsr/myac/config"
	"github.com/p2ppsr/myac/internal/certificate"
	appErrors "github.com/p2ppsr/myac/pkg/errors"
	"github.com/p2ppsr/myac/pkg/logger"
)

// Handlers holds the dependencies needed by the REST handlers.
type Handlers struct {
	uc     certificate.CertificateUsecase
	logger logger.Logger
	config config.Config
}

func NewHandlers(uc certificate.CertificateUsecase, logger logger.Logger, config config.Config) *Handlers {
	return &Handlers{uc: uc, logger: logger, config: config}
}

// Router returns a chi.Router with all API routes mounted. The identity
// middleware guards every route that acts on behalf of a caller; by the
// time a handler runs, the subject identity key has been verified upstream.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(h.corsMiddleware)
	r.Use(h.requestLogger)

	r.Post("/identify", h.Identify)

	r.Group(func(r chi.Router) {
		r.Use(h.identityMiddleware)
		r.Post("/signCertificate", h.SignCertificate)
		r.Get("/certificate/{serialNumber}", h.GetCertificate)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorCode(w, appErrors.CodeRouteNotFound, "Route not found.")
	})

	return r
}

// SignCertificate validates and signs a new certificate. The subject is the
// transport-verified caller, never anything in the body.
func (h *Handlers) SignCertificate(w http.ResponseWriter, r *http.Request) {
	var cmd certificate.SignCertificateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorCode(w, appErrors.CodeInvalidCSR, "Request body is not valid JSON.")
		return
	}
	cmd.SubjectIdentityKey = identityFromContext(r.Context())

	cert, err := h.uc.SignCertificate(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

// Identify returns the certifier's public key and certificate types.
func (h *Handlers) Identify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uc.Identify(r.Context()))
}

// GetCertificate returns a stored certificate by serial number. Decryption
// of field values is only honored in development mode.
func (h *Handlers) GetCertificate(w http.ResponseWriter, r *http.Request) {
	serialNumber := chi.URLParam(r, "serialNumber")

	decrypt := r.URL.Query().Get("decrypt") == "true" &&
		h.config.Server.Environment == "development"

	cert, err := h.uc.GetCertificate(r.Context(), serialNumber, decrypt)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

// ErrorResponse is the wire error envelope.
type ErrorResponse struct {
	Status      string         `json:"status"`
	Code        appErrors.Code `json:"code"`
	Description string         `json:"description"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorCode(w http.ResponseWriter, code appErrors.Code, description string) {
	writeJSON(w, appErrors.HTTPStatus(code), ErrorResponse{
		Status:      "error",
		Code:        code,
		Description: description,
	})
}

// writeError maps an error from the usecase to the wire envelope. Anything
// without a wire code becomes ERR_INTERNAL with a generic description so
// internals never leak.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	code := appErrors.CodeOf(err)
	description := "An internal error has occurred."
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		description = appErr.Description
	} else {
		h.logger.Error("unhandled request error", "err", err)
	}
	writeErrorCode(w, code, description)
}
