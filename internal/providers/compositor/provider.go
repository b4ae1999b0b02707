package compositor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slateos/slate/backend/internal/domain/display"
	"github.com/slateos/slate/backend/internal/domain/layout"
	"github.com/slateos/slate/backend/internal/domain/window"
	"github.com/slateos/slate/backend/internal/shared/types"
)

// Provider exposes the layout engine as a service tool surface
type Provider struct {
	windows  *window.Manager
	displays *display.Manager
}

// NewProvider creates a compositor provider
func NewProvider(windows *window.Manager, displays *display.Manager) *Provider {
	return &Provider{
		windows:  windows,
		displays: displays,
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "compositor",
		Name:        "Compositor Service",
		Description: "Window frame layout and surface crop resolution",
		Category:    types.CategoryCompositor,
		Capabilities: []string{
			"attach",
			"configure",
			"measure",
			"frame",
			"layout",
			"stats",
		},
		Tools: []types.Tool{
			{
				ID:          "compositor.attach",
				Name:        "Attach Window",
				Description: "Register a window with its layout attributes",
				Parameters: []types.Parameter{
					{Name: "title", Type: "string", Description: "Window title"},
					{Name: "attrs", Type: "json", Description: "Window attributes", Required: true},
					{Name: "measured", Type: "json", Description: "Measured size"},
					{Name: "layer", Type: "number", Description: "Compositing layer"},
					{Name: "display_id", Type: "string", Description: "Display to lay out on"},
				},
				Returns: "window",
			},
			{
				ID:          "compositor.configure",
				Name:        "Configure Window",
				Description: "Replace a window's declared attributes",
				Parameters: []types.Parameter{
					{Name: "window_id", Type: "string", Description: "Window ID", Required: true},
					{Name: "attrs", Type: "json", Description: "Window attributes", Required: true},
				},
				Returns: "ok",
			},
			{
				ID:          "compositor.measure",
				Name:        "Set Measured Size",
				Description: "Record the size chosen by a measurement pass",
				Parameters: []types.Parameter{
					{Name: "window_id", Type: "string", Description: "Window ID", Required: true},
					{Name: "width", Type: "number", Description: "Measured width", Required: true},
					{Name: "height", Type: "number", Description: "Measured height", Required: true},
				},
				Returns: "ok",
			},
			{
				ID:          "compositor.frame",
				Name:        "Read Frame",
				Description: "Read the window's last resolved frame and crop",
				Parameters: []types.Parameter{
					{Name: "window_id", Type: "string", Description: "Window ID", Required: true},
				},
				Returns: "frame",
			},
			{
				ID:          "compositor.layout",
				Name:        "Run Layout Pass",
				Description: "Resolve frames for every window on a display",
				Parameters: []types.Parameter{
					{Name: "display_id", Type: "string", Description: "Display ID", Required: true},
					{Name: "policy", Type: "json", Description: "Reference frames", Required: true},
				},
				Returns: "pass",
			},
			{
				ID:          "compositor.stats",
				Name:        "Stats",
				Description: "Window registry statistics",
				Parameters:  []types.Parameter{},
				Returns:     "stats",
			},
		},
	}
}

// Execute runs a compositor tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, execCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "compositor.attach":
		return p.attach(params)
	case "compositor.configure":
		return p.configure(params)
	case "compositor.measure":
		return p.measure(params)
	case "compositor.frame":
		return p.frame(params)
	case "compositor.layout":
		return p.layout(params)
	case "compositor.stats":
		return p.stats()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) attach(params map[string]interface{}) (*types.Result, error) {
	var req struct {
		Title     string                  `json:"title"`
		Attrs     layout.WindowAttributes `json:"attrs"`
		Measured  layout.MeasuredSize     `json:"measured"`
		Layer     int                     `json:"layer"`
		Container *layout.ContainerBounds `json:"container"`
		DisplayID string                  `json:"display_id"`
	}
	if err := decode(params, &req); err != nil {
		return failure(err.Error())
	}

	win := p.windows.Attach(req.Title, req.Attrs, req.Measured, req.Layer, req.Container)
	if req.DisplayID != "" {
		if err := p.displays.AttachWindow(req.DisplayID, win.ID); err != nil {
			p.windows.Detach(win.ID)
			return failure(err.Error())
		}
	}
	return success(map[string]interface{}{"window_id": win.ID})
}

func (p *Provider) configure(params map[string]interface{}) (*types.Result, error) {
	var req struct {
		WindowID string                  `json:"window_id"`
		Attrs    layout.WindowAttributes `json:"attrs"`
	}
	if err := decode(params, &req); err != nil {
		return failure(err.Error())
	}
	if !p.windows.Configure(req.WindowID, req.Attrs) {
		return failure(fmt.Sprintf("window not found: %s", req.WindowID))
	}
	return success(map[string]interface{}{"window_id": req.WindowID})
}

func (p *Provider) measure(params map[string]interface{}) (*types.Result, error) {
	var req struct {
		WindowID string `json:"window_id"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
	}
	if err := decode(params, &req); err != nil {
		return failure(err.Error())
	}
	if !p.windows.SetMeasured(req.WindowID, layout.MeasuredSize{Width: req.Width, Height: req.Height}) {
		return failure(fmt.Sprintf("window not found: %s", req.WindowID))
	}
	return success(map[string]interface{}{"window_id": req.WindowID})
}

func (p *Provider) frame(params map[string]interface{}) (*types.Result, error) {
	var req struct {
		WindowID string `json:"window_id"`
	}
	if err := decode(params, &req); err != nil {
		return failure(err.Error())
	}

	win, ok := p.windows.Get(req.WindowID)
	if !ok {
		return failure(fmt.Sprintf("window not found: %s", req.WindowID))
	}
	frame, crop, resolved := win.Results()
	if !resolved {
		return failure(fmt.Sprintf("window not laid out yet: %s", req.WindowID))
	}
	return success(map[string]interface{}{
		"frame": frame,
		"crop":  crop,
	})
}

func (p *Provider) layout(params map[string]interface{}) (*types.Result, error) {
	var req struct {
		DisplayID string               `json:"display_id"`
		Policy    display.PolicyFrames `json:"policy"`
	}
	if err := decode(params, &req); err != nil {
		return failure(err.Error())
	}

	result, err := p.displays.RunPass(req.DisplayID, req.Policy)
	if err != nil {
		return failure(err.Error())
	}
	return success(map[string]interface{}{
		"pass_id":     result.PassID,
		"num_changed": result.NumChanged,
		"updates":     result.Updates,
	})
}

func (p *Provider) stats() (*types.Result, error) {
	stats := p.windows.Stats()
	return success(map[string]interface{}{
		"total_windows":  stats.TotalWindows,
		"scaled_windows": stats.ScaledWindows,
		"contained":      stats.Contained,
	})
}

// decode round-trips loosely typed params into a typed request
func decode(params map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}
