package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListMemosTool(srv, svc)
	registerGetMemoTool(srv, svc)
	registerCreateMemoTool(srv, svc)
	registerUpdateMemoTool(srv, svc)
	registerTogglePinTool(srv, svc)
	registerTrashMemoTool(srv, svc)
	registerRestoreMemoTool(srv, svc)
	registerPurgeMemoTool(srv, svc)
	registerEmptyTrashTool(srv, svc)
	registerListTrashTool(srv, svc)
	registerListCategoriesTool(srv, svc)
	registerAddCategoryTool(srv, svc)
	registerDeleteCategoryTool(srv, svc)
	registerReorderCategoriesTool(srv, svc)
	registerMoveMemoTool(srv, svc)
}

type idArgs struct {
	ID *int64 `json:"id"`
}

func bindID(request mcp.CallToolRequest) (int64, *mcp.CallToolResult) {
	var args idArgs
	if err := request.BindArguments(&args); err != nil {
		return 0, mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err))
	}
	if args.ID == nil {
		return 0, mcp.NewToolResultError("id is required")
	}
	return *args.ID, nil
}

func withID(description string) mcp.ToolOption {
	return mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description(description),
	)
}

func registerListMemosTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_memos",
		mcp.WithDescription("List memos, pinned first then newest first."),
		mcp.WithString("category",
			mcp.Description(`Category filter: "all" (default), "uncategorized", or a category name.`),
		),
		mcp.WithString("search",
			mcp.Description("Only memos whose title or content contains this text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category string `json:"category"`
			Search   string `json:"search"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		memos, err := svc.ListMemos(ctx, ListOptions{Category: args.Category, Search: args.Search})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"memos": memos,
			"count": len(memos),
		})
	})
}

func registerGetMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_memo",
		mcp.WithDescription("Fetch a single memo by identifier."),
		withID("Memo identifier to fetch."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := bindID(request)
		if bad != nil {
			return bad, nil
		}
		dto, err := svc.GetMemo(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_memo",
		mcp.WithDescription("Create a memo and select it."),
		mcp.WithString("title",
			mcp.Description("Memo title."),
		),
		mcp.WithString("content",
			mcp.Description("Memo body."),
		),
		mcp.WithString("category",
			mcp.Description("Category for the memo. Omit to use the active filter; empty means uncategorized."),
		),
		mcp.WithBoolean("pinned",
			mcp.Description("Pin the memo."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title    string  `json:"title"`
			Content  string  `json:"content"`
			Category *string `json:"category"`
			Pinned   bool    `json:"pinned"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.CreateMemo(ctx, CreateOptions{
			Title:    args.Title,
			Content:  args.Content,
			Category: args.Category,
			Pinned:   args.Pinned,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_memo",
		mcp.WithDescription("Overwrite the title, content or category of a memo. Omitted fields are kept."),
		withID("Memo identifier to update."),
		mcp.WithString("title",
			mcp.Description("New title."),
		),
		mcp.WithString("content",
			mcp.Description("New body."),
		),
		mcp.WithString("category",
			mcp.Description("New category; empty means uncategorized."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID       *int64  `json:"id"`
			Title    *string `json:"title"`
			Content  *string `json:"content"`
			Category *string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateMemo(ctx, UpdateOptions{
			ID:       *args.ID,
			Title:    args.Title,
			Content:  args.Content,
			Category: args.Category,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerTogglePinTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_pin",
		mcp.WithDescription("Pin or unpin a memo."),
		withID("Memo identifier to toggle."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := bindID(request)
		if bad != nil {
			return bad, nil
		}
		dto, err := svc.TogglePin(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerTrashMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"trash_memo",
		mcp.WithDescription("Move a memo to the trash. It can be restored later."),
		withID("Memo identifier to trash."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := bindID(request)
		if bad != nil {
			return bad, nil
		}
		dto, err := svc.TrashMemo(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRestoreMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"restore_memo",
		mcp.WithDescription("Restore a trashed memo and select it."),
		withID("Trash entry identifier to restore."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := bindID(request)
		if bad != nil {
			return bad, nil
		}
		dto, err := svc.RestoreMemo(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPurgeMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"purge_memo",
		mcp.WithDescription("Permanently delete a trashed memo. This can not be undone."),
		withID("Trash entry identifier to purge."),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to purge."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID      *int64 `json:"id"`
			Confirm bool   `json:"confirm"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == nil {
			return mcp.NewToolResultError("id is required"), nil
		}
		if err := svc.PurgeMemo(ctx, *args.ID, args.Confirm); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"purged": *args.ID})
	})
}

func registerEmptyTrashTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"empty_trash",
		mcp.WithDescription("Permanently delete every trashed memo. This can not be undone."),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to empty the trash."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Confirm bool `json:"confirm"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		n, err := svc.EmptyTrash(ctx, args.Confirm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"purged": n})
	})
}

func registerListTrashTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_trash",
		mcp.WithDescription("List trashed memos, most recently deleted first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.ListTrash(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"trash": entries,
			"count": len(entries),
		})
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List categories with memo counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListCategories(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"categories": summaries,
			"count":      len(summaries),
		})
	})
}

func registerAddCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_category",
		mcp.WithDescription("Declare a category that may have no memos yet."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		added, err := svc.AddCategory(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"name": name, "added": added})
	})
}

func registerDeleteCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_category",
		mcp.WithDescription("Delete a category, moving its memos to another category."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category to delete."),
		),
		mcp.WithString("target",
			mcp.Description("Category that receives the memos; empty means uncategorized."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name   string `json:"name"`
			Target string `json:"target"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		moved, err := svc.DeleteCategory(ctx, args.Name, args.Target)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": args.Name, "moved": moved})
	})
}

func registerReorderCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reorder_categories",
		mcp.WithDescription("Move a declared category from one position to another."),
		mcp.WithNumber("from",
			mcp.Required(),
			mcp.Description("Current zero-based position."),
		),
		mcp.WithNumber("to",
			mcp.Required(),
			mcp.Description("New zero-based position."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			From int `json:"from"`
			To   int `json:"to"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		order, err := svc.ReorderCategories(ctx, args.From, args.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"categories": order})
	})
}

func registerMoveMemoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_memo",
		mcp.WithDescription("Assign a memo to a category."),
		withID("Memo identifier to move."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Target category; empty means uncategorized."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID       *int64 `json:"id"`
			Category string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == nil {
			return mcp.NewToolResultError("id is required"), nil
		}
		dto, err := svc.MoveMemo(ctx, *args.ID, args.Category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
