package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slateos/slate/backend/internal/domain/display"
	"github.com/slateos/slate/backend/internal/domain/geometry"
)

type createDisplayRequest struct {
	Name             string        `json:"name"`
	Bounds           geometry.Rect `json:"bounds"`
	Overscan         geometry.Rect `json:"overscan"`
	SystemDecorLayer int           `json:"system_decor_layer"`
}

// CreateDisplay registers a new display
func (h *Handlers) CreateDisplay(c *gin.Context) {
	var req createDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.displays.Add(req.Name, req.Bounds, req.Overscan, req.SystemDecorLayer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("display created",
		zap.String("display_id", d.ID),
		zap.String("name", d.Name),
		zap.Int("width", d.Bounds.Width()),
		zap.Int("height", d.Bounds.Height()),
	)
	c.JSON(http.StatusCreated, d)
}

// ListDisplays returns all displays
func (h *Handlers) ListDisplays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"displays": h.displays.List()})
}

// GetDisplay returns one display and its layout order
func (h *Handlers) GetDisplay(c *gin.Context) {
	d, ok := h.displays.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "display not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"display": d,
		"windows": d.Windows(),
	})
}

// RemoveDisplay deletes a display
func (h *Handlers) RemoveDisplay(c *gin.Context) {
	if !h.displays.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "display not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// AttachWindowToDisplay adds a window to a display's layout order
func (h *Handlers) AttachWindowToDisplay(c *gin.Context) {
	if err := h.displays.AttachWindow(c.Param("id"), c.Param("window_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "attached"})
}

// DetachWindowFromDisplay removes a window from a display's layout order
func (h *Handlers) DetachWindowFromDisplay(c *gin.Context) {
	if err := h.displays.DetachWindow(c.Param("id"), c.Param("window_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "detached"})
}

// RunLayoutPass resolves frames for every window on a display
func (h *Handlers) RunLayoutPass(c *gin.Context) {
	var policy display.PolicyFrames
	if err := c.ShouldBindJSON(&policy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	displayID := c.Param("id")
	result, err := h.displays.RunPass(displayID, policy)
	if err != nil {
		if _, ok := h.displays.Get(displayID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// Malformed policy rectangles are caller bugs, not geometry.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Debug("layout pass complete",
		zap.String("pass_id", result.PassID),
		zap.String("display_id", result.DisplayID),
		zap.Int("windows", len(result.Updates)),
		zap.Int("changed", result.NumChanged),
		zap.Duration("duration", result.Duration),
	)
	c.JSON(http.StatusOK, result)
}
