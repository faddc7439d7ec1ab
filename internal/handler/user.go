package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Register(ctx context.Context, in entities.CreateUser) (entities.User, error)
	RegisterInternal(ctx context.Context, in entities.CreateUser) (entities.User, error)
	UsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
}

type UserHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       UserService
	authorize Middleware
}

func NewUserHandler(logger *slog.Logger, svc UserService, authorize Middleware) *UserHandler {
	return &UserHandler{
		logger:    logger.With(slog.String("handler", "user")),
		validate:  validator.New(),
		svc:       svc,
		authorize: authorize,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.With(h.authorize).Post(auth.RouteUsers, h.Register)
	r.With(h.authorize).Post(auth.RouteInternalUsers, h.RegisterInternal)
	r.With(h.authorize).Post(auth.RouteUsersByRole, h.UsersByRole)
}

// Register creates a customer account.
// @Summary      Sign up
// @Description  Open to anonymous callers. Role defaults to customer; any other role is rejected.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      SignUpRequest  true  "Account"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email taken"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.svc.Register)
}

// RegisterInternal creates a staff account.
// @Summary      Create staff account
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SignUpRequest  true  "Account"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email taken"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /users/internal [post]
func (h *UserHandler) RegisterInternal(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.svc.RegisterInternal)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request, register func(context.Context, entities.CreateUser) (entities.User, error)) {
	ctx := r.Context()

	var req SignUpRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := register(ctx, SignUpJSONToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to create user", err, slog.String("role", req.Role))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// UsersByRole lists every account with a role, newest first.
// @Summary      Find users by role
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        role  path      string  true  "Role"
// @Success      200  {object}  UsersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /users/find/{role} [post]
func (h *UserHandler) UsersByRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := entities.Role(chi.URLParam(r, "role"))

	users, err := h.svc.UsersByRole(ctx, role)
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to find users", err, slog.String("role", role.String()))
		return
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, UsersResponse{Users: out}, http.StatusOK)
}
