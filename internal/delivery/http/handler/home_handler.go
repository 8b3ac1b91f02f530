package handler

import (
	"net/http"

	"clinic-booking/pkg/renderer"
)

type HomeHandler struct {
	renderer *renderer.Renderer
}

func NewHomeHandler(renderer *renderer.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "home", map[string]interface{}{
		"Title": "Welcome",
	})
}
