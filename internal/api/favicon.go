package api

import (
	"net/http"

	"github.com/amterp/swatch/internal/render"
)

// GetFavicon serves a favicon tinted with the selected color.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	hex := ""
	if selected := h.session.Snapshot().Selected; selected != nil {
		hex = selected.Hex
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(render.FaviconSVG(hex)))
}
