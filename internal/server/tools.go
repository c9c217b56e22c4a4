package server

import (
	"github.com/ironsheep/image-style-mcp/internal/style"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// styleTokens lists every supported style token for schema enums.
func styleTokens() []string {
	all := style.All()
	tokens := make([]string, len(all))
	for i, s := range all {
		tokens[i] = s.String()
	}
	return tokens
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Read an image file header and return its dimensions, detected format and size in bytes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_list_styles",
			Description: "List the available photo styles with a short description of each.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_stylize",
			Description: "Apply a photo style to an image file and write the result as JPEG under a generated name. Unknown styles return the original image re-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image (JPEG, PNG, GIF, BMP, TIFF or WebP)",
					},
					"style": map[string]interface{}{
						"type":        "string",
						"description": "Style token. Default original",
						"enum":        styleTokens(),
						"default":     style.Original.String(),
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the result. Defaults to the server's configured output directory",
					},
					"include_base64": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the JPEG as base64. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_stylize_batch",
			Description: "Apply several photo styles to one image in parallel. Each style is written to its own JPEG; failures are reported per style.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"styles": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
							"enum": styleTokens(),
						},
						"description": "Style tokens to apply",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the results. Defaults to the server's configured output directory",
					},
				},
				"required": []string{"path", "styles"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return respond(req.ID, map[string]interface{}{"tools": GetToolDefinitions()})
}
