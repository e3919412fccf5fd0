package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/stoz-mcp/internal/grid"
	"github.com/ironsheep/stoz-mcp/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_sample", "pixel_channels").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "grid_dimensions":
		return s.handleGridDimensions(args)
	case "grid_sample":
		return s.handleGridSample(args)
	case "pixel_channels":
		return s.handlePixelChannels(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Grid Handlers ===

// GridDimensionsResult reports the image size and the derived cell grid size.
type GridDimensionsResult struct {
	Image    grid.Dimensions `json:"image"`
	Grid     grid.Dimensions `json:"grid"`
	CellSize int             `json:"cell_size"`
}

// CellSample is the cell value resolved for one requested pixel coordinate.
type CellSample struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	CellX int    `json:"cell_x"`
	CellY int    `json:"cell_y"`
	Value uint8  `json:"value"`
}

// GridSampleResult contains samples in the same order as the requested points.
type GridSampleResult struct {
	Grid     grid.Dimensions `json:"grid"`
	CellSize int             `json:"cell_size"`
	Samples  []CellSample    `json:"samples"`
}

type gridArgs struct {
	Path     string `json:"path"`
	CellSize *int   `json:"cell_size"`
}

// cellSize defaults to 1 only when the argument is omitted; an explicit
// 0 is passed through so the grid rejects it.
func (a *gridArgs) cellSize() int {
	if a.CellSize == nil {
		return 1
	}
	return *a.CellSize
}

func (s *Server) handleGridDimensions(args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sampler, err := s.cache.Load(a.Path, a.cellSize())
	if err != nil {
		return nil, err
	}
	return &GridDimensionsResult{
		Image:    sampler.ImageDimensions(),
		Grid:     sampler.GridDimensions(),
		CellSize: sampler.CellSize(),
	}, nil
}

type gridSampleArgs struct {
	gridArgs
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleGridSample(args json.RawMessage) (interface{}, error) {
	var a gridSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sampler, err := s.cache.Load(a.Path, a.cellSize())
	if err != nil {
		return nil, err
	}

	samples := make([]CellSample, 0, len(a.Points))
	for _, p := range a.Points {
		cx, cy := sampler.CellPosition(p.X, p.Y)
		samples = append(samples, CellSample{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			CellX: cx,
			CellY: cy,
			Value: sampler.Pixel(p.X, p.Y),
		})
	}

	return &GridSampleResult{
		Grid:     sampler.GridDimensions(),
		CellSize: sampler.CellSize(),
		Samples:  samples,
	}, nil
}

// === Pixel Handlers ===

// PixelChannelsResult describes a channel buffer after an update.
type PixelChannelsResult struct {
	Mode     string `json:"mode"`
	Alpha    bool   `json:"alpha"`
	Length   int    `json:"length"`
	Channels []int  `json:"channels"`
}

type pixelChannelsArgs struct {
	Mode   string `json:"mode"`
	Alpha  bool   `json:"alpha"`
	Path   string `json:"path,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Values []*int `json:"values"`
}

func (s *Server) handlePixelChannels(args json.RawMessage) (interface{}, error) {
	var a pixelChannelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	mode, err := pixel.ParseColorMode(a.Mode)
	if err != nil {
		return nil, err
	}

	values := make([]pixel.Value, len(a.Values))
	for i, v := range a.Values {
		if v == nil {
			values[i] = pixel.None()
			continue
		}
		if *v < 0 || *v > 255 {
			return nil, fmt.Errorf("channel value %d at index %d outside 0-255", *v, i)
		}
		values[i] = pixel.Some(uint8(*v))
	}

	px, err := pixel.New(mode, a.Alpha)
	if err != nil {
		return nil, err
	}

	// Seed from the image pixel first so values act as overrides.
	if a.Path != "" {
		img, err := s.cache.Image(a.Path)
		if err != nil {
			return nil, err
		}
		bounds := img.Bounds()
		x, y := bounds.Min.X+a.X, bounds.Min.Y+a.Y
		if !(image.Point{X: x, Y: y}.In(bounds)) {
			return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d",
				a.X, a.Y, bounds.Dx(), bounds.Dy())
		}
		px.SetColor(img.At(x, y))
	}
	px.SetChannels(values...)

	raw := px.Bytes()
	channels := make([]int, len(raw))
	for i, b := range raw {
		channels[i] = int(b)
	}

	return &PixelChannelsResult{
		Mode:     px.Mode().String(),
		Alpha:    px.AlphaEnabled(),
		Length:   px.Len(),
		Channels: channels,
	}, nil
}
