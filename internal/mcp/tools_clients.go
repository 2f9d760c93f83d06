package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerClientTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_clients",
		Description: "List clients in the Harvest account. Filter by active state or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListClients(api))

	addTool(r, &mcp.Tool{
		Name:        "get_client",
		Description: "Get a single client by its ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetClient(api))

	addTool(r, &mcp.Tool{
		Name:        "create_client",
		Description: "Create a new client. Only the name is required.",
		Annotations: writeAnnotations(),
	}, handleCreateClient(api))

	addTool(r, &mcp.Tool{
		Name:        "update_client",
		Description: "Update a client. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateClient(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_client",
		Description: "Delete a client. Fails if the client still has projects or invoices.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteClient(api))
}

// ListClientsInput is the input for the list_clients tool.
type ListClientsInput struct {
	IsActive     *bool  `json:"is_active,omitempty"     jsonschema:"true for active clients only, false for archived only"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return clients updated since this ISO-8601 datetime"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetClientInput is the input for the get_client tool.
type GetClientInput struct {
	ClientID int64 `json:"client_id" jsonschema:"ID of the client to fetch"`
}

// CreateClientInput is the input for the create_client tool.
type CreateClientInput struct {
	Name     string `json:"name"                jsonschema:"client name"`
	IsActive *bool  `json:"is_active,omitempty" jsonschema:"whether the client is active, defaults to true"`
	Address  string `json:"address,omitempty"   jsonschema:"physical address of the client"`
	Currency string `json:"currency,omitempty"  jsonschema:"3-letter currency code such as USD"`
}

// UpdateClientInput is the input for the update_client tool.
type UpdateClientInput struct {
	ClientID int64   `json:"client_id"           jsonschema:"ID of the client to update"`
	Name     *string `json:"name,omitempty"      jsonschema:"new client name"`
	IsActive *bool   `json:"is_active,omitempty" jsonschema:"new active state"`
	Address  *string `json:"address,omitempty"   jsonschema:"new physical address"`
	Currency *string `json:"currency,omitempty"  jsonschema:"new 3-letter currency code"`
}

// DeleteClientInput is the input for the delete_client tool.
type DeleteClientInput struct {
	ClientID int64 `json:"client_id" jsonschema:"ID of the client to delete"`
}

func handleListClients(api *harvest.API) mcp.ToolHandlerFor[ListClientsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListClientsInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListClients(ctx, harvest.ClientListParams{
			IsActive:     input.IsActive,
			UpdatedSince: input.UpdatedSince,
			ListParams:   harvest.ListParams{Page: input.Page, PerPage: input.PerPage},
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func handleGetClient(api *harvest.API) mcp.ToolHandlerFor[GetClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetClientInput) (*mcp.CallToolResult, any, error) {
		client, err := api.GetClient(ctx, input.ClientID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(client), nil, nil
	}
}

func handleCreateClient(api *harvest.API) mcp.ToolHandlerFor[CreateClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateClientInput) (*mcp.CallToolResult, any, error) {
		client, err := api.CreateClient(ctx, harvest.ClientCreate{
			Name:     input.Name,
			IsActive: input.IsActive,
			Address:  input.Address,
			Currency: input.Currency,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(client), nil, nil
	}
}

func handleUpdateClient(api *harvest.API) mcp.ToolHandlerFor[UpdateClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateClientInput) (*mcp.CallToolResult, any, error) {
		client, err := api.UpdateClient(ctx, input.ClientID, harvest.ClientUpdate{
			Name:     input.Name,
			IsActive: input.IsActive,
			Address:  input.Address,
			Currency: input.Currency,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(client), nil, nil
	}
}

func handleDeleteClient(api *harvest.API) mcp.ToolHandlerFor[DeleteClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteClientInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteClient(ctx, input.ClientID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Client", input.ClientID), nil, nil
	}
}
