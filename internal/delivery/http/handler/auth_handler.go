package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/renderer"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/schema"
	"github.com/gorilla/sessions"
)

type AuthHandler struct {
	authUsecase usecase.DoctorAuthUsecase
	validator   *validator.CustomValidator
	renderer    *renderer.Renderer
	store       sessions.Store
	decoder     *schema.Decoder
}

func NewAuthHandler(authUsecase usecase.DoctorAuthUsecase, validator *validator.CustomValidator, renderer *renderer.Renderer, store sessions.Store) *AuthHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		renderer:    renderer,
		store:       store,
		decoder:     decoder,
	}
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, &dto.DoctorLoginRequest{}, nil, "")
}

// Login checks the submitted credentials. A mismatch re-renders the form
// with a single generic message so nothing leaks about which field was
// wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var req dto.DoctorLoginRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderLogin(w, &req, h.validator.FormatValidationErrors(err), "")
		return
	}

	if err := h.authUsecase.Login(req.Username, req.Password); err != nil {
		h.renderLogin(w, &req, nil, "Invalid credentials")
		return
	}

	if err := middleware.SignInDoctor(w, r, h.store); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/doctor/dashboard", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.SignOutDoctor(w, r, h.store)
	http.Redirect(w, r, "/doctor/login", http.StatusFound)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, form *dto.DoctorLoginRequest, errors map[string]string, message string) {
	if errors == nil {
		errors = map[string]string{}
	}
	h.renderer.Render(w, http.StatusOK, "doctor_login", map[string]interface{}{
		"Title":  "Doctor Login",
		"Form":   form,
		"Errors": errors,
		"Error":  message,
	})
}
