// Package server implements an MCP (Model Context Protocol) server that exposes
// the signature finder to MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - signature_detect: find signature candidates on a page, optionally with OCR
//   - signature_crop: crop a candidate box as base64 PNG
//   - image_dimensions: width, height and format of a page
//
// # Image Caching
//
// Decoded pages are cached by path for the lifetime of the process, so a detect
// followed by crops of its candidates decodes the page once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: the Go error string, when there is one
//
// # Usage
//
//	det, _ := signature.NewDetector(signature.DefaultConfig())
//	srv := server.New(det, logger, version)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
package server
