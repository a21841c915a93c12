package rest

import (
	"net/http"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/auth"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in registerRequest) input() services.RegisterInput {
	return services.RegisterInput{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.svc.Auth.Register(r.Context(), in.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}{"User registered successfully", u})
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	login := in.Email
	if login == "" {
		login = in.Username
	}

	res, err := h.svc.Auth.Login(r.Context(), login, in.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:    res.Token,
		UserID:   res.User.ID,
		Username: res.User.Username,
		FullName: res.User.FullName,
		Email:    res.User.Email,
		Role:     res.User.Role,
	})
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.fail(w, r, common.ErrAuthorizationMissing)
		return
	}
	writeJSON(w, http.StatusOK, claims)
}

// callerID is the authenticated user id; routes using it sit behind
// RequireRole.
func callerID(r *http.Request) int64 {
	if c, ok := auth.ClaimsFromContext(r.Context()); ok {
		return c.UserID
	}
	return 0
}
