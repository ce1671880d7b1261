package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"querycraft/backend/internal/nlsql"
)

type Server struct {
	mcpServer *server.MCPServer
	pipeline  *nlsql.Pipeline
}

func NewServer(pipeline *nlsql.Pipeline) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"QueryCraft",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
		pipeline: pipeline,
	}

	s.registerTools()
	return s
}

func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"query_database",
			mcp.WithDescription("Answer a natural-language question by running a validated read-only SQL query against the store"),
			mcp.WithString("question", mcp.Required(), mcp.Description("The question to answer")),
		),
		s.handleQueryDatabase,
	)
}

func (s *Server) handleQueryDatabase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	question, ok := args["question"].(string)
	if !ok || question == "" {
		return mcp.NewToolResultError("Missing required parameter: question"), nil
	}

	resp := s.pipeline.Run(ctx, question)

	jsonBytes, _ := json.Marshal(resp)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func MountHTTPHandlers(mux *http.ServeMux, mcpServer *server.MCPServer) {
	// Use SSE server for /mcp/sse and /mcp/message endpoints
	sseServer := server.NewSSEServer(mcpServer, server.WithStaticBasePath("/mcp"))

	mux.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		// Direct POST for tool calls
		if r.Method == http.MethodPost {
			sseServer.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// SSE endpoints
	mux.HandleFunc("/mcp/sse", sseServer.ServeHTTP)
	mux.HandleFunc("/mcp/message", sseServer.ServeHTTP)
}
