// Package server implements the MCP (Model Context Protocol) server that
// exposes the photo styles as tools.
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
//   - image_load: Read dimensions, format and size of a source image
//   - image_list_styles: List style tokens with descriptions
//   - image_stylize: Apply one style and write <uuid>_<style>.jpg
//   - image_stylize_batch: Apply several styles concurrently
//
// Batch work is bounded by the configured max_concurrent value.
//
// # Source Caching
//
// Source bytes are cached by path for the lifetime of the server so that
// repeated styling of one file reads it from disk once. Files larger than
// max_input_bytes are rejected before they are read.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Batch calls report per-style failures inside the result instead.
//
// # Usage
//
//	cfg, _ := config.Load("")
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Send()
//	}
package server
