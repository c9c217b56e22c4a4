package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-style-mcp/internal/config"
)

// newTestServer returns a server writing into a per-test output directory.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		LogLevel:      "info",
		OutputDir:     t.TempDir(),
		MaxConcurrent: 2,
		MaxInputBytes: 10 << 20,
	}
	return New(cfg, zerolog.Nop())
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s)
	assert.NotNil(t, s.cache, "New() did not initialize cache")
	assert.NotNil(t, s.processor, "New() did not initialize processor")
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))
			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestMCPResponse_WithError(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &MCPError{
			Code:    -32601,
			Message: "Method not found",
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"result"`)

	var decoded MCPResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Error)
	assert.Equal(t, -32601, decoded.Error.Code)
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	assert.Equal(t, "2024-11-05", result["protocolVersion"])

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok, "serverInfo should be a map")
	assert.Equal(t, "image-style-mcp", serverInfo["name"])
	assert.Equal(t, "0.1.0", serverInfo["version"])
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})

	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})

	// Notifications don't get responses
	assert.Nil(t, resp)
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "nonexistent/method"})

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "nonexistent/method")
}

func TestServe(t *testing.T) {
	s := newTestServer(t)
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, s.Serve(strings.NewReader(in), &out))

	dec := json.NewDecoder(&out)
	var ids []interface{}
	for dec.More() {
		var resp MCPResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Nil(t, resp.Error)
		ids = append(ids, resp.ID)
	}
	// Blank lines, malformed lines and notifications produce no output.
	assert.Equal(t, []interface{}{float64(1), float64(2)}, ids)
}

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		resp *MCPResponse
		want string
	}{
		{
			"success",
			respond("a", map[string]interface{}{"ok": true}),
			`{"jsonrpc":"2.0","id":"a","result":{"ok":true}}`,
		},
		{
			"error without data",
			fail(7, codeMethodNotFound, "Method not found: x", nil),
			`{"jsonrpc":"2.0","id":7,"error":{"code":-32601,"message":"Method not found: x"}}`,
		},
		{
			"error with data",
			fail(nil, codeToolFailed, "Tool execution failed", "boom"),
			`{"jsonrpc":"2.0","id":null,"error":{"code":-32000,"message":"Tool execution failed","data":"boom"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
