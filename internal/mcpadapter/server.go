package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "semantic-validator"
	ServerVersion = "1.0.0"
)

// NewServer registers every validator tool on a fresh MCP server.
func NewServer(v Validator) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_input",
		Description: "Validate a form input: local syntax rules first, then a Gemini plausibility check. Messages are in Bahasa Indonesia.",
	}, NewValidateHandler(v))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_syntax",
		Description: "Run only the local syntax rules for an input. No model call, works without an API key.",
	}, NewCheckSyntaxHandler(v))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_models",
		Description: "List the model selectors accepted by validate_input",
	}, ListModels)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List input categories and the labels that select them",
	}, ListCategories)

	return server
}
