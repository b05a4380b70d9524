package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/tabstrip/hover-cli/internal/config"
	"github.com/tabstrip/hover-cli/internal/detect"
	"github.com/tabstrip/hover-cli/internal/logging"
	"github.com/tabstrip/hover-cli/internal/model"
	"github.com/tabstrip/hover-cli/internal/platform"
	"github.com/tabstrip/hover-cli/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	cfg        config.Config
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the hover tools.
func newMCPServer(cfg config.Config) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider, cfg: cfg}
	s.mcp = mcpserver.NewMCPServer("hover-cli", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("check_hover",
			mcp.WithDescription("Detect which color-coded tab group band of the focused browser window the mouse cursor is over. Returns the 1-based group index, or 0 when no group applies."),
		),
		s.handleCheckHover,
	)

	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List all visible top-level windows with app name, title, bounds, and focus flag"),
			mcp.WithBoolean("focused", mcp.Description("Only return the focused window")),
		),
		s.handleList,
	)
}

func (s *mcpServer) handleCheckHover(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	detector := detect.New(s.provider, s.cfg, logging.Logger)
	index, err := detector.HoveredGroupIndex()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(map[string]uint32{"index": index})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	focusedOnly, _ := params["focused"].(bool)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.provider.Windows.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if focusedOnly {
		var filtered []model.Window
		for _, w := range windows {
			if w.Focused {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}

	b, _ := yaml.Marshal(windows)
	return mcp.NewToolResultText(string(b)), nil
}
