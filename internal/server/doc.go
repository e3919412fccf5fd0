// Package server implements the MCP (Model Context Protocol) server for cell grid tools.
//
// This package provides a JSON-RPC 2.0 server that exposes grid sampling and pixel
// channel layout through the MCP protocol.
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
//   - grid_dimensions: Image size and cell grid size for a cell size
//   - grid_sample: Cell values for a list of pixel coordinates (clamped)
//   - pixel_channels: Channel buffer layout after a partial update
//
// # Grid Caching
//
// Grids are built once per (path, cell size) pair and kept in a SamplerCache
// for the lifetime of the process. Image decoding happens only on a cache miss.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
