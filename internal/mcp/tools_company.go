package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerCompanyTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "get_company",
		Description: "Get the Harvest company the configured account belongs to, including time tracking mode, currency display settings, and enabled features.",
		Annotations: readOnlyAnnotations(),
	}, handleGetCompany(api))
}

// GetCompanyInput is the input for the get_company tool.
type GetCompanyInput struct{}

func handleGetCompany(api *harvest.API) mcp.ToolHandlerFor[GetCompanyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetCompanyInput) (*mcp.CallToolResult, any, error) {
		company, err := api.GetCompany(ctx)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(company), nil, nil
	}
}
