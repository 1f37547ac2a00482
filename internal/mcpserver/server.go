// Package mcpserver exposes the converter as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"unitconv-core/convert"

	"unitconv/internal/version"
)

const serverName = "unitconv"

// NewServer returns an MCP server with the convert, list_units and
// list_domains tools registered. conv and log may be nil.
func NewServer(conv *convert.Converter, log *zap.Logger) *mcp.Server {
	if conv == nil {
		conv = convert.New(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version.Version}, nil)
	mcp.AddTool(server, ConvertTool(), ConvertHandler(conv, log))
	mcp.AddTool(server, ListUnitsTool(), ListUnitsHandler(conv))
	mcp.AddTool(server, ListDomainsTool(), ListDomainsHandler(conv))
	return server
}

// Serve runs server on transport until the peer disconnects or ctx ends.
// Cancellation is a normal shutdown.
func Serve(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	err := server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
