package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the scanned page",
	}
}

func boxProperty() map[string]interface{} {
	coord := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "integer", "description": desc}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": "Bounding box as returned by signature_detect, bounds inclusive",
		"properties": map[string]interface{}{
			"min_x": coord("Leftmost column"),
			"min_y": coord("Top row"),
			"max_x": coord("Rightmost column"),
			"max_y": coord("Bottom row"),
		},
		"required": []string{"min_x", "min_y", "max_x", "max_y"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "signature_detect",
			Description: "Find handwritten signature regions on a scanned document page. Returns one candidate per signature contour with its bounding box and point count. A page without a signature returns no candidates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"ocr": map[string]interface{}{
						"type":        "boolean",
						"description": "Run Tesseract on each candidate to flag printed text. Default false",
						"default":     false,
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code used with ocr. Default eng",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "signature_crop",
			Description: "Crop a signature candidate out of the page and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"box":  boxProperty(),
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Extra pixels kept around the box, clipped to the page. Default 0",
						"default":     0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "box"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and format of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
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
