package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/image-style-mcp/internal/codec"
	"github.com/ironsheep/image-style-mcp/internal/style"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_stylize").
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
		return fail(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return fail(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	return respond(req.ID, textContent(result))
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_list_styles":
		return s.handleListStyles(args)
	case "image_stylize":
		return s.handleImageStylize(args)
	case "image_stylize_batch":
		return s.handleImageStylizeBatch(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// textContent wraps a tool result in MCP's content format, rendering it as
// indented JSON. A value that cannot be marshalled renders as "".
func textContent(v interface{}) map[string]interface{} {
	b, _ := json.MarshalIndent(v, "", "  ")
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": string(b)},
		},
	}
}

// unmarshalArgs decodes tool arguments, treating a missing object as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// ImageLoadResult describes a source image on disk.
type ImageLoadResult struct {
	Path string `json:"path"`
	*codec.Info
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	info, err := codec.Inspect(data)
	if err != nil {
		return nil, err
	}
	return &ImageLoadResult{Path: a.Path, Info: info}, nil
}

// StyleInfo is one entry of the image_list_styles result.
type StyleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListStyles(_ json.RawMessage) (interface{}, error) {
	all := style.All()
	styles := make([]StyleInfo, len(all))
	for i, st := range all {
		styles[i] = StyleInfo{Name: st.String(), Description: st.Description()}
	}
	return map[string]interface{}{"styles": styles}, nil
}

// === Stylize ===

type imageStylizeArgs struct {
	Path          string `json:"path"`
	Style         string `json:"style"`
	OutputDir     string `json:"output_dir"`
	IncludeBase64 bool   `json:"include_base64"`
}

// StylizeResult reports one written output image.
type StylizeResult struct {
	// Style is the canonical style that was applied.
	Style string `json:"style"`

	// Requested is the token sent by the client.
	Requested string `json:"requested"`

	// Applied is false when the requested token was not recognised and the
	// image was only re-encoded.
	Applied bool `json:"applied"`

	OutputPath  string `json:"output_path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	SizeBytes   int    `json:"size_bytes"`
	MimeType    string `json:"mime_type"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

func (s *Server) handleImageStylize(args json.RawMessage) (interface{}, error) {
	var a imageStylizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Style == "" {
		a.Style = style.Original.String()
	}

	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.stylize(data, a.Style, s.outputDir(a.OutputDir), a.IncludeBase64)
}

type imageStylizeBatchArgs struct {
	Path      string   `json:"path"`
	Styles    []string `json:"styles"`
	OutputDir string   `json:"output_dir"`
}

// BatchItem is the outcome of one style in a batch.
type BatchItem struct {
	Requested string         `json:"requested"`
	Result    *StylizeResult `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// BatchResult collects every style of a batch in request order.
type BatchResult struct {
	Path      string      `json:"path"`
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

func (s *Server) handleImageStylizeBatch(args json.RawMessage) (interface{}, error) {
	var a imageStylizeBatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if len(a.Styles) == 0 {
		return nil, errors.New("styles must not be empty")
	}

	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	dir := s.outputDir(a.OutputDir)

	items := make([]BatchItem, len(a.Styles))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(s.cfg.MaxConcurrent)
	for i, token := range a.Styles {
		g.Go(func() error {
			items[i].Requested = token
			res, err := s.stylize(data, token, dir, false)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Result = res
			return nil
		})
	}
	// Workers record failures per item and never return an error.
	_ = g.Wait()

	out := &BatchResult{Path: a.Path, Items: items}
	for _, it := range items {
		if it.Error != "" {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	s.logger.Info().
		Str("path", a.Path).
		Int("succeeded", out.Succeeded).
		Int("failed", out.Failed).
		Msg("batch complete")
	return out, nil
}

func (s *Server) outputDir(requested string) string {
	if requested != "" {
		return requested
	}
	return s.cfg.OutputDir
}

// stylize runs one style over data and writes the JPEG to dir as
// <uuid>_<style>.jpg.
func (s *Server) stylize(data []byte, token, dir string, includeBase64 bool) (*StylizeResult, error) {
	st, applied := style.Parse(token)

	out, err := s.processor.Process(data, token)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate output name: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.jpg", id, st))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	info, err := codec.Inspect(out)
	if err != nil {
		return nil, err
	}

	res := &StylizeResult{
		Style:      st.String(),
		Requested:  token,
		Applied:    applied,
		OutputPath: path,
		Width:      info.Width,
		Height:     info.Height,
		SizeBytes:  info.SizeBytes,
		MimeType:   codec.MimeType,
	}
	if includeBase64 {
		res.ImageBase64 = base64.StdEncoding.EncodeToString(out)
	}

	s.logger.Debug().
		Str("style", res.Style).
		Str("output", path).
		Int("bytes", res.SizeBytes).
		Msg("stylized")
	return res, nil
}
