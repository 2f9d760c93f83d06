package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// rejectUnknownTools intercepts tools/call requests for names that were
// never registered and reports them in the tool error shape instead of
// a protocol error, so the calling agent can read the message and pick
// a valid tool.
func rejectUnknownTools(known map[string]bool) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if rejection := unknownToolResult(known, method, safeParams(req)); rejection != nil {
				return rejection, nil
			}
			return next(ctx, method, req)
		}
	}
}

// unknownToolResult decides whether a request names an unregistered
// tool. It returns nil when the request should proceed.
func unknownToolResult(known map[string]bool, method string, params any) *mcp.CallToolResult {
	if method != "tools/call" {
		return nil
	}
	name := paramsToolName(params)
	if name == "" || known[name] {
		return nil
	}
	return errorEnvelope("Unknown tool: " + name)
}

// paramsToolName extracts the tool name from tools/call params. Params
// are round-tripped through JSON so this does not depend on the SDK's
// concrete params type.
func paramsToolName(params any) string {
	if params == nil {
		return ""
	}
	data, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	var call struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &call); err != nil {
		return ""
	}
	return call.Name
}

// trafficLogging logs each request and response pair at debug level.
func trafficLogging(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			logger.Debug("mcp request", "method", method, "params", formatPayload(safeParams(req)))

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp response", "method", method, "error", err)
				} else {
					logger.Debug("mcp response", "method", method, "result", formatPayload(result))
				}
			}

			return result, err
		}
	}
}

// safeParams tolerates requests whose params accessor panics on a nil
// underlying value.
func safeParams(req mcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
