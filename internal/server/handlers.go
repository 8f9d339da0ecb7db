package server

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/sigfind/internal/imaging"
	"github.com/ironsheep/sigfind/internal/ocr"
	"github.com/ironsheep/sigfind/internal/signature"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "signature_detect").
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
		s.log.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
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
	case "signature_detect":
		return s.handleSignatureDetect(args)
	case "signature_crop":
		return s.handleSignatureCrop(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and checks the mandatory path.
func decodeArgs(args json.RawMessage, v interface{ pathArg() string }) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if v.pathArg() == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a *pathArgs) pathArg() string { return a.Path }

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type signatureDetectArgs struct {
	pathArgs
	OCR      bool   `json:"ocr"`
	Language string `json:"language"`
}

// detectCandidate is a signature candidate with its optional text reading.
type detectCandidate struct {
	signature.Candidate
	OCR      *ocr.Annotation `json:"ocr,omitempty"`
	OCRError string          `json:"ocr_error,omitempty"`
}

// detectResult is the payload of signature_detect.
type detectResult struct {
	Path       string            `json:"path"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Count      int               `json:"count"`
	Candidates []detectCandidate `json:"candidates"`
	Stages     signature.Stages  `json:"stages"`
	Config     signature.Config  `json:"config"`
}

func (s *Server) handleSignatureDetect(args json.RawMessage) (interface{}, error) {
	var a signatureDetectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = ocr.DefaultLanguage
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := s.detector.Detect(img)
	if err != nil {
		return nil, err
	}

	out := &detectResult{
		Path:       a.Path,
		Width:      res.Width,
		Height:     res.Height,
		Candidates: make([]detectCandidate, 0, len(res.Contours)),
		Stages:     res.Stages,
		Config:     s.detector.Config(),
	}
	for _, c := range res.Candidates() {
		dc := detectCandidate{Candidate: c}
		if a.OCR {
			// boxes are relative to the page origin
			r := c.Box.Region().Add(img.Bounds().Min)
			ann, err := s.annotate(img, r, a.Language)
			if err != nil {
				dc.OCRError = err.Error()
			} else {
				dc.OCR = ann
			}
		}
		out.Candidates = append(out.Candidates, dc)
	}
	out.Count = len(out.Candidates)

	s.log.Info("signature detect",
		zap.String("path", a.Path),
		zap.Int("candidates", out.Count),
	)
	return out, nil
}

type signatureCropArgs struct {
	pathArgs
	Box     *signature.Box `json:"box"`
	Padding int            `json:"padding"`
	Scale   float64        `json:"scale"`
}

func (s *Server) handleSignatureCrop(args json.RawMessage) (interface{}, error) {
	var a signatureCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Box == nil {
		return nil, fmt.Errorf("box is required")
	}
	if a.Padding < 0 {
		return nil, fmt.Errorf("padding %d must not be negative", a.Padding)
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	r := imaging.PadRegion(a.Box.Region().Add(bounds.Min), a.Padding, bounds)
	return imaging.CropRegion(img, r, a.Scale)
}
