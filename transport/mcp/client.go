package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/cities-game/game/engine"
	"github.com/wricardo/cities-game/game/service"
)

// historyTail is how many accepted cities formatGameState shows
const historyTail = 5

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Cities Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Cities Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Take turns naming Russian cities with the computer. Each city must start with
the letter the previous city ended with. A city can only be used once per game.
You win when the computer has no city left to name.

AVAILABLE TOOLS:
- create_session: Create a new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get the current game state of a session
- play: Send one line of input (a city name, /new_game or /exit_game)
- delete_session: Remove a session
- catalog_info: Catalog size and how many cities start with each letter
- game_rules: Full rules of the game

Start every session with play(input="/new_game").`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleDeleteSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play",
		Description: "Send one line of input to the game: a city name, /new_game or /exit_game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"input": map[string]interface{}{
					"type":        "string",
					"description": "City name in Russian, or a command",
				},
			},
			Required: []string{"session_id", "input"},
		},
	}, c.handlePlay)

	// Reference
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "catalog_info",
		Description: "Get the number of known cities and how many start with each letter",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleCatalogInfo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the complete rules of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
}

// GetMCPServer returns the underlying MCP server
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall makes an HTTP call to the REST API
func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	return args
}

func sessionPath(sessionID string, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nSend play(input=%q) to start.\n", session.ID, engine.CommandNewGame)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		state := "unknown"
		if s.GameState != nil {
			state = s.GameState.State.String()
		}
		fmt.Fprintf(&result, "- %s (State: %s, Created: %s)\n",
			s.ID, state, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	if err := c.apiCall(ctx, "DELETE", sessionPath(sessionID, ""), nil, nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted session: %s\n", sessionID)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handlePlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}
	input, ok := args["input"].(string)
	if !ok {
		return mcp.NewToolResultError("input is required"), nil
	}

	var result service.TurnResult
	body := map[string]string{"input": input}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/input"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurnResult(&result)), nil
}

func (c *Client) handleCatalogInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var info service.CatalogInfo
	if err := c.apiCall(ctx, "GET", "/api/catalog", nil, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCatalogInfo(&info)), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := fmt.Sprintf(`Cities Game - Rules

COMMANDS:
- %s starts a new game (also restarts a running one)
- %s ends the session; it ignores all further input

TURNS:
- Who moves first is decided at random when a game starts.
- Each city must start with the letter the previous city ends with.
- Names ending in Ь take the letter before it.
- Names ending in Ы accept the letter before it or Ы.
- Names ending in Й accept Й or И. Names ending in Ё accept Ё or Е.
- Case, hyphens and Ё/Е differences are ignored when matching names,
  but the first letter must match exactly.

REJECTIONS (the game keeps waiting for your city):
- %q: the city is not in the catalog
- %q: the city starts with the wrong letter
- %q: the city was already used in this game

WINNING:
- If the computer has no unused city for the required letter, you win
  and the game returns to the start screen.
`, engine.CommandNewGame, engine.CommandExitGame,
		engine.MsgNoSuchCity, engine.MsgWrongFirstLetter, engine.MsgCityAlreadyUsed)

	return mcp.NewToolResultText(rules), nil
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nCreated: %s\nLast accessed: %s\n\n%s",
		session.ID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		session.LastAccessedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder
	fmt.Fprintf(&result, "State: %s | Cities left: %d/%d\n", state.State, state.RemainingCities, state.TotalCities)

	if len(state.RequiredLetters) > 0 {
		fmt.Fprintf(&result, "Next city must start with: %s\n", engine.FormatLetters(state.RequiredLetters))
	}

	if n := len(state.History); n > 0 {
		start := max(0, n-historyTail)
		result.WriteString("Recent cities:\n")
		for i, move := range state.History[start:] {
			fmt.Fprintf(&result, "  %d. %s (%s)\n", start+i+1, move.City, move.Player)
		}
	}

	if state.PlayerWon {
		result.WriteString("You won the last game!\n")
	}
	if state.Finished {
		result.WriteString("Session finished.\n")
	}

	if len(state.Messages) > 0 {
		result.WriteString("\nLast output:\n")
		for _, line := range state.Messages {
			result.WriteString(line + "\n")
		}
	}

	return result.String()
}

func formatTurnResult(result *service.TurnResult) string {
	var out strings.Builder
	fmt.Fprintf(&out, "> %s\n", result.Input)
	if len(result.Messages) == 0 {
		out.WriteString("(no output)\n")
	}
	for _, line := range result.Messages {
		out.WriteString(line + "\n")
	}

	if state := result.GameState; state != nil && !result.Finished {
		fmt.Fprintf(&out, "\nState: %s | Cities left: %d/%d\n", state.State, state.RemainingCities, state.TotalCities)
	}
	if result.Finished {
		out.WriteString("\nSession finished.\n")
	}

	return out.String()
}

func formatCatalogInfo(info *service.CatalogInfo) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Known cities: %d\n\n", info.TotalCities)

	letters := make([]string, 0, len(info.LetterCounts))
	for letter := range info.LetterCounts {
		letters = append(letters, letter)
	}
	slices.Sort(letters)

	for _, letter := range letters {
		fmt.Fprintf(&out, "%s: %d\n", letter, info.LetterCounts[letter])
	}
	return out.String()
}
