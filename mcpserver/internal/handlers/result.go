// Package handlers exposes journal operations as MCP tools.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
)

// upstreamMessage replaces backend error details in tool output.
const upstreamMessage = "Sorry, I encountered an error. Please try again."

// ToolRegisterer adds a group of tools to an MCP server.
type ToolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorResult turns an SDK error into a tool error the model can read.
// Tool failures are reported in the result, never as protocol errors.
func errorResult(action string, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, client.ErrUpstream) {
		return mcp.NewToolResultError(upstreamMessage), nil
	}
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %v", action, err)), nil
}
