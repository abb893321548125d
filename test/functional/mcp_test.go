package functional_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/app"
	"opsdeck/internal/testserver"
)

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type rpcError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func rpcCall(t *testing.T, ts *testserver.TestServer, method string, params any) rpcResponse {
	t.Helper()

	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      1,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

// callTool makes a tools/call RPC call and unwraps the text payload.
func callTool(t *testing.T, ts *testserver.TestServer, name string, args any) json.RawMessage {
	t.Helper()

	params := map[string]any{"name": name}
	if args != nil {
		params["arguments"] = args
	}

	resp := rpcCall(t, ts, "tools/call", params)
	require.Nil(t, resp.Error, "RPC error: %v", resp.Error)

	var result toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.False(t, result.IsError, "tool error: %s", result.Content[0].Text)
	require.NotEmpty(t, result.Content)
	return json.RawMessage(result.Content[0].Text)
}

// callToolExpectError makes a tools/call RPC call expecting a tool error.
func callToolExpectError(t *testing.T, ts *testserver.TestServer, name string, args any) {
	t.Helper()

	params := map[string]any{"name": name}
	if args != nil {
		params["arguments"] = args
	}

	resp := rpcCall(t, ts, "tools/call", params)
	require.Nil(t, resp.Error, "RPC error: %v", resp.Error)

	var result toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.True(t, result.IsError, "expected tool error from %s", name)
}

func TestFunctional_ToolsList(t *testing.T) {
	ts := testserver.New(t)

	resp := rpcCall(t, ts, "tools/list", map[string]any{})
	require.Nil(t, resp.Error)

	var result struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.NotEmpty(t, result.Tools)
}

func TestFunctional_TaskBoardFlow(t *testing.T) {
	ts := testserver.New(t)

	var created struct {
		ID string `json:"id"`
	}
	raw := callTool(t, ts, "create_task", map[string]any{"title": "Ship the beta"})
	require.NoError(t, json.Unmarshal(raw, &created))

	callTool(t, ts, "move_task", map[string]any{"id": created.ID, "column": "in_progress"})

	var board struct {
		Backlog    []json.RawMessage `json:"backlog"`
		InProgress []json.RawMessage `json:"in_progress"`
		Done       []json.RawMessage `json:"done"`
	}
	raw = callTool(t, ts, "get_board", nil)
	require.NoError(t, json.Unmarshal(raw, &board))
	require.Empty(t, board.Backlog)
	require.Len(t, board.InProgress, 1)
	require.Empty(t, board.Done)

	var feed struct {
		Entries []struct {
			Text string `json:"text"`
		} `json:"entries"`
	}
	raw = callTool(t, ts, "get_activity", nil)
	require.NoError(t, json.Unmarshal(raw, &feed))
	require.Len(t, feed.Entries, 2)
	require.Contains(t, feed.Entries[0].Text, "Moved")
	require.Contains(t, feed.Entries[1].Text, "Created")
}

func TestFunctional_InvalidInputLeavesStateUnchanged(t *testing.T) {
	ts := testserver.New(t)

	callToolExpectError(t, ts, "create_task", map[string]any{"title": ""})
	callToolExpectError(t, ts, "add_client", map[string]any{"name": "  "})
	callToolExpectError(t, ts, "add_event", map[string]any{"title": "standup"})

	var feed struct {
		Entries []json.RawMessage `json:"entries"`
	}
	raw := callTool(t, ts, "get_activity", nil)
	require.NoError(t, json.Unmarshal(raw, &feed))
	require.Empty(t, feed.Entries)
}

func TestFunctional_DashboardSummary(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "add_cost", map[string]any{"label": "Hosting", "amount": 120, "period": "yr"})
	callTool(t, ts, "add_cost", map[string]any{"label": "Tools", "amount": 20})
	var acme struct {
		ID string `json:"id"`
	}
	raw := callTool(t, ts, "add_client", map[string]any{"name": "Acme", "mrr": 800, "status": "active"})
	require.NoError(t, json.Unmarshal(raw, &acme))

	var summary struct {
		MRR         float64 `json:"mrr"`
		MonthlyCost float64 `json:"monthly_cost"`
	}
	raw = callTool(t, ts, "get_dashboard", nil)
	require.NoError(t, json.Unmarshal(raw, &summary))
	require.Equal(t, 800.0, summary.MRR)
	require.Equal(t, 30.0, summary.MonthlyCost)
}

func TestFunctional_StateSurvivesRestart(t *testing.T) {
	ts := testserver.New(t)

	callTool(t, ts, "set_notes", map[string]any{"notes": "call the accountant"})
	callTool(t, ts, "create_task", map[string]any{"title": "Renew domain"})

	// A fresh container over the same store is a process restart.
	reopened := app.New(ts.Store, nil)
	defer reopened.Close()
	reopened.Hydrate(context.Background())

	require.Equal(t, "call the accountant", reopened.Notes())
	require.Len(t, reopened.Tasks.List(), 1)
	require.Len(t, reopened.Agents.List(), 3, "seeded agents persist, not reseed")
}
