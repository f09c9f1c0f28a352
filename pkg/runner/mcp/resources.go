package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerMemosResource(srv, svc)
	registerTrashResource(srv, svc)
	registerCategoriesResource(srv, svc)
}

func registerMemosResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"memo://memos",
		"Memos",
		mcp.WithResourceDescription("Every live memo, pinned first then newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		memos, err := svc.ListMemos(ctx, ListOptions{})
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"memos": memos,
			"count": len(memos),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTrashResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"memo://trash",
		"Trash",
		mcp.WithResourceDescription("Soft-deleted memos that can still be restored."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListTrash(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"trash": entries,
			"count": len(entries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"memo://categories",
		"Categories",
		mcp.WithResourceDescription("Memo categories with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"categories": summaries,
			"count":      len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
