package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slateos/slate/backend/internal/domain/display"
	"github.com/slateos/slate/backend/internal/domain/layout"
	"github.com/slateos/slate/backend/internal/domain/service"
	"github.com/slateos/slate/backend/internal/domain/window"
	"github.com/slateos/slate/backend/internal/infrastructure/logging"
	"github.com/slateos/slate/backend/internal/infrastructure/monitoring"
	"github.com/slateos/slate/backend/internal/shared/types"
)

// Handlers bundles the REST endpoints of the compositor API
type Handlers struct {
	windows  *window.Manager
	displays *display.Manager
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates the handler set
func NewHandlers(windows *window.Manager, displays *display.Manager, registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		windows:  windows,
		displays: displays,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root returns service identification
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "slate-compositor",
		"status":  "running",
	})
}

// Health returns liveness and registry counts
func (h *Handlers) Health(c *gin.Context) {
	stats := h.windows.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"windows":  stats.TotalWindows,
		"displays": len(h.displays.List()),
	})
}

type attachWindowRequest struct {
	Title     string                  `json:"title"`
	Attrs     layout.WindowAttributes `json:"attrs"`
	Measured  layout.MeasuredSize     `json:"measured"`
	Layer     int                     `json:"layer"`
	Container *layout.ContainerBounds `json:"container"`
	DisplayID string                  `json:"display_id"`
}

func (r *attachWindowRequest) validate() string {
	if r.Container != nil {
		if !r.Container.Bounds.Valid() {
			return "container bounds malformed"
		}
		if !r.Container.TempInsetBounds.Valid() {
			return "temp inset bounds malformed"
		}
	}
	return ""
}

// AttachWindow registers a new window, optionally placing it on a display
func (h *Handlers) AttachWindow(c *gin.Context) {
	var req attachWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	win := h.windows.Attach(req.Title, req.Attrs, req.Measured, req.Layer, req.Container)
	if req.DisplayID != "" {
		if err := h.displays.AttachWindow(req.DisplayID, win.ID); err != nil {
			h.windows.Detach(win.ID)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}

	h.logger.Info("window attached",
		zap.String("window_id", win.ID),
		zap.String("title", win.Title),
		zap.String("display_id", req.DisplayID),
	)
	c.JSON(http.StatusCreated, win)
}

// ListWindows returns all attached windows
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.windows.List(),
		"stats":   h.windows.Stats(),
	})
}

// GetWindow returns one window
func (h *Handlers) GetWindow(c *gin.Context) {
	win, ok := h.windows.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, win)
}

// GetWindowFrame returns the window's last resolved frame and crop
func (h *Handlers) GetWindowFrame(c *gin.Context) {
	win, ok := h.windows.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}

	frame, crop, resolved := win.Results()
	if !resolved {
		c.JSON(http.StatusConflict, gin.H{"error": "window not laid out yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"frame": frame,
		"crop":  crop,
	})
}

// ConfigureWindow replaces a window's declared attributes
func (h *Handlers) ConfigureWindow(c *gin.Context) {
	var attrs layout.WindowAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.windows.Configure(c.Param("id"), attrs) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "configured"})
}

// MeasureWindow records a measurement pass result
func (h *Handlers) MeasureWindow(c *gin.Context) {
	var measured layout.MeasuredSize
	if err := c.ShouldBindJSON(&measured); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.windows.SetMeasured(c.Param("id"), measured) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "measured"})
}

// SetWindowLayer moves a window to a new compositing layer
func (h *Handlers) SetWindowLayer(c *gin.Context) {
	var req struct {
		Layer int `json:"layer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.windows.SetLayer(c.Param("id"), req.Layer) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "layered"})
}

// SetWindowResizing toggles resize-transition crop suppression
func (h *Handlers) SetWindowResizing(c *gin.Context) {
	var req struct {
		Resizing bool `json:"resizing"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.windows.SetTransitionResizing(c.Param("id"), req.Resizing) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DetachWindow removes a window
func (h *Handlers) DetachWindow(c *gin.Context) {
	id := c.Param("id")
	if !h.windows.Detach(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	h.logger.Info("window detached", zap.String("window_id", id))
	c.JSON(http.StatusOK, gin.H{"status": "detached"})
}

// ListServices returns registered service definitions
func (h *Handlers) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.registry.List(nil)})
}

// ExecuteService routes a tool invocation to its provider
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req struct {
		ServiceID string                 `json:"service_id"`
		ToolID    string                 `json:"tool_id"`
		Params    map[string]interface{} `json:"params"`
		Context   *types.Context         `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ServiceID, req.ToolID, req.Params, req.Context)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// MetricsJSON returns a snapshot of key metrics
func (h *Handlers) MetricsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}
