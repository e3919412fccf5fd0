package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Grid Operations
		{
			Name:        "grid_dimensions",
			Description: "Get the pixel size of an image and the size of its cell grid for a given cell size. Partial cells at the right and bottom edges are counted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length of a square cell in pixels. Default 1",
						"default":     1,
						"minimum":     1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "grid_sample",
			Description: "Sample the averaged gray value of the cell covering each pixel coordinate. Coordinates outside the image clamp to the nearest edge cell instead of failing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length of a square cell in pixels. Default 1",
						"default":     1,
						"minimum":     1,
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Pixel coordinates to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},

		// Pixel Operations
		{
			Name:        "pixel_channels",
			Description: "Build a pixel channel buffer for a color mode, optionally seeded from an image pixel, and apply a partial channel update. Null entries leave a channel unchanged; extra entries are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mode": map[string]interface{}{
						"type":        "string",
						"description": "Color mode: L (luminance) or RGB",
						"enum":        []string{"L", "RGB"},
					},
					"alpha": map[string]interface{}{
						"type":        "boolean",
						"description": "Append an alpha channel. Default false",
						"default":     false,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional image file; when set, the buffer starts from the color at (x, y) before values are applied",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel X coordinate in the image (0-based). Used with path",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel Y coordinate in the image (0-based). Used with path",
					},
					"values": map[string]interface{}{
						"type":        "array",
						"description": "Channel values 0-255 by position, or null to skip",
						"items": map[string]interface{}{
							"type":    []string{"integer", "null"},
							"minimum": 0,
							"maximum": 255,
						},
					},
				},
				"required": []string{"mode"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
