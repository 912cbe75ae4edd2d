package api

import (
	"net/http"
	"strconv"

	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/render"
	"github.com/amterp/swatch/internal/service"
	"github.com/hashicorp/go-hclog"
)

// Handler contains all HTTP handlers for the API.
//
// Single-user, single-session: every browser tab shares the one session held
// by the SessionService, and changes are pushed to all of them over WebSocket.
type Handler struct {
	catalog *service.CatalogService
	session *service.SessionService
	logger  hclog.Logger
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(catalogService *service.CatalogService, sessionService *service.SessionService, logger hclog.Logger) *Handler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Handler{
		catalog: catalogService,
		session: sessionService,
		logger:  logger,
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Catalog routes
	mux.HandleFunc("GET /api/v1/search", h.Search)
	mux.HandleFunc("GET /api/v1/colors", h.ListColors)
	mux.HandleFunc("GET /api/v1/colors/{code}", h.GetColor)
	mux.HandleFunc("GET /api/v1/categories", h.ListCategories)
	mux.HandleFunc("GET /api/v1/match", h.Match)

	// Session routes
	mux.HandleFunc("GET /api/v1/session", h.GetSession)
	mux.HandleFunc("POST /api/v1/session/search", h.SessionSearch)
	mux.HandleFunc("POST /api/v1/session/color", h.SelectColor)
	mux.HandleFunc("POST /api/v1/session/wall", h.SelectWall)
	mux.HandleFunc("DELETE /api/v1/session/wall", h.ClearWall)
	mux.HandleFunc("POST /api/v1/session/apply", h.Apply)
	mux.HandleFunc("POST /api/v1/session/reset", h.Reset)
	mux.HandleFunc("GET /api/v1/room.svg", h.GetRoomSVG)

	// Static files (frontend)
	mux.Handle("/", h.StaticHandler())
}

// --- Catalog Handlers ---

// Search looks up a code without touching the session.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	JSON(w, http.StatusOK, h.catalog.Search(code))
}

// ListColors returns catalog colors, optionally filtered by ?category= and ?name=.
func (h *Handler) ListColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.catalog.List(service.ListInput{
		Category: r.URL.Query().Get("category"),
		Name:     r.URL.Query().Get("name"),
	})
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string][]model.Color{"colors": colors})
}

// GetColor returns a single color with its related colors.
func (h *Handler) GetColor(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.Show(r.PathValue("code"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, detail)
}

// ListCategories returns category names in catalog order.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string][]string{"categories": h.catalog.Categories()})
}

// Match returns the catalog colors closest to ?hex=.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	limit := model.DefaultNearest
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			BadRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	matches, err := h.catalog.Match(r.URL.Query().Get("hex"), limit)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string][]catalog.Match{"matches": matches})
}

// --- Session Handlers ---

// GetSession returns the current session snapshot.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session.Snapshot())
}

// SessionSearchRequest is the request body for searching within the session.
type SessionSearchRequest struct {
	Code string `json:"code"`
}

// SessionSearch runs a search that replaces the session's results.
// Waits out the configured search delay; a client that disconnects first
// leaves the session untouched.
func (h *Handler) SessionSearch(w http.ResponseWriter, r *http.Request) {
	var req SessionSearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := h.session.Search(r.Context(), req.Code)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, snap)
}

// SelectColorRequest is the request body for selecting a color.
type SelectColorRequest struct {
	Code string `json:"code"`
}

// SelectColor selects a color from the current results.
func (h *Handler) SelectColor(w http.ResponseWriter, r *http.Request) {
	var req SelectColorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		BadRequest(w, "code is required")
		return
	}

	snap, err := h.session.SelectColor(req.Code)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, snap)
}

// SelectWallRequest is the request body for selecting a wall.
type SelectWallRequest struct {
	Wall string `json:"wall"`
}

// SelectWall highlights a wall.
func (h *Handler) SelectWall(w http.ResponseWriter, r *http.Request) {
	var req SelectWallRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := h.session.SelectWall(req.Wall)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, snap)
}

// ClearWall removes the wall highlight.
func (h *Handler) ClearWall(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session.ClearWall())
}

// ApplyRequest is the request body for painting a wall directly.
type ApplyRequest struct {
	Wall string `json:"wall"`
	Hex  string `json:"hex"`
}

// Apply paints a wall with an arbitrary color.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Hex == "" {
		BadRequest(w, "hex is required")
		return
	}

	snap, err := h.session.Apply(req.Wall, req.Hex)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, snap)
}

// Reset restores the default room.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.session.Reset())
}

// GetRoomSVG renders the current room.
func (h *Handler) GetRoomSVG(w http.ResponseWriter, r *http.Request) {
	snap := h.session.Snapshot()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(render.RoomSVG(snap.Room, snap.Wall))); err != nil {
		h.logger.Warn("failed to write room svg", "revision", snap.Revision, "error", err)
	}
}
