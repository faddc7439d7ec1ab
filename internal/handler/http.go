package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/middleware"
	"github.com/SergeyBogomolovv/pizza-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Middleware guards a single route.
type Middleware = func(http.Handler) http.Handler

const WelcomeMessage = "WELCOME TO PENNYWHISTLE PIZZA WEB API. VISIT API DOCUMENTATION AT /docs"

type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

func (h *ServiceHandler) Init(r chi.Router) {
	r.Get("/", h.Welcome)
	r.Get("/health", h.Health)
}

// Welcome greets API clients.
// @Summary      Welcome message
// @Tags         service
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       / [get]
func (h *ServiceHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, MessageResponse{Message: WelcomeMessage}, http.StatusOK)
}

// Health reports liveness.
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /health [get]
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, MessageResponse{Message: "Healthy"}, http.StatusOK)
}

// statusOf maps domain errors to HTTP status codes. Unknown errors are 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, entities.ErrMissingDeliveryInformation),
		errors.Is(err, entities.ErrInvalidStatusFilter),
		errors.Is(err, entities.ErrUnknownStatus),
		errors.Is(err, entities.ErrInvalidDateRange),
		errors.Is(err, entities.ErrInvalidCursor),
		errors.Is(err, entities.ErrInvalidRole),
		errors.Is(err, entities.ErrNoVariants),
		errors.Is(err, entities.ErrTooManyVariants),
		errors.Is(err, entities.ErrDuplicateVariant),
		errors.Is(err, entities.ErrSizeImmutable),
		errors.Is(err, entities.ErrEmptyUpdate):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrInvalidCredentials),
		errors.Is(err, entities.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrTransitionNotAllowed),
		errors.Is(err, entities.ErrStatusNotVisible),
		errors.Is(err, entities.ErrForeignOrders):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrStatusConflict),
		errors.Is(err, entities.ErrUserExists),
		errors.Is(err, entities.ErrProductExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the error's own message for domain errors
// and logs everything that ends up as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error, attrs ...any) {
	code := statusOf(err)
	if code != http.StatusInternalServerError {
		utils.WriteError(w, err.Error(), code)
		return
	}

	logger.ErrorContext(r.Context(), msg, append(attrs, slog.Any("error", err))...)
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

// decodeOptionalBody treats an empty body as the zero value.
func decodeOptionalBody(r *http.Request, v any) error {
	err := utils.DecodeBody(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func principal(r *http.Request) entities.Principal {
	p, _ := middleware.PrincipalFrom(r.Context())
	return p
}
