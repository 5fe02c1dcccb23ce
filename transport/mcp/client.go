package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apanich/number-challenge/game/engine"
	"github.com/apanich/number-challenge/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
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
		"Number Challenge",
		"2.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Number Challenge - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Place every randomly drawn number into the slot sequence so the occupied slots
always read in ascending order. Fill the whole board to win; if a drawn number
has no valid slot, the round is lost.

AVAILABLE TOOLS:
- game_state: Get current game state with board visualization
- place: Place the current number into a slot - requires intent explanation
- bulk_place: Place a sequence of numbers at once - requires intent explanation
- reset_game: Start a fresh round
- placement_history: View past placements
- session_stats: View cumulative win/loss statistics
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_slot: Get detailed info about one slot (its value bounds and whether the current number fits)

NOTE: The 'intent' parameter on place/bulk_place tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
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
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place",
		Description: "Place the current number into a slot",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"slot_index": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based slot index to place the current number into",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this placement (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before placing",
				},
			},
			Required: []string{"session_id", "slot_index"},
		},
	}, c.handlePlace)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_place",
		Description: "Place a sequence of drawn numbers into slots, one placement per drawn number",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"slot_indexes": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Array of zero-based slot indexes, applied to consecutive drawn numbers",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of placements (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before placing",
				},
			},
			Required: []string{"session_id", "slot_indexes"},
		},
	}, c.handleBulkPlace)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to start a fresh round",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "placement_history",
		Description: "Get placement history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlacementHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "session_stats",
		Description: "Get cumulative win/loss statistics for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSessionStats)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_slot",
		Description: "Get detailed information about a specific slot: its value (if occupied), the value bounds implied by its neighbors, and whether the current number fits there.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"index": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based slot index to describe",
				},
			},
			Required: []string{"session_id", "index"},
		},
	}, c.handleDescribeSlot)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
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

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	slotIndexRaw, _ := args["slot_index"].(float64)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"slot_index": int(slotIndexRaw),
		"reset":      reset,
	}

	var result service.PlacementResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/place", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatPlacementResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkPlace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	slotsRaw, _ := args["slot_indexes"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert slot indexes to int array
	slots := make([]int, 0, len(slotsRaw))
	for _, s := range slotsRaw {
		if idx, ok := s.(float64); ok {
			slots = append(slots, int(idx))
		}
	}

	body := map[string]interface{}{
		"slot_indexes": slots,
		"reset":        reset,
	}

	var result service.BulkPlacementResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-place", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkPlacementResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlacementHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSessionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var stats service.StatsInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/stats", sessionID), nil, &stats)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf(`Session %s statistics:
Games played: %d
Games won: %d
Games lost: %d
Total successful placements: %d
Average placements per game: %.2f

%s`,
		stats.SessionID,
		stats.Stats.GamesPlayed,
		stats.Stats.GamesWon,
		stats.GamesLost,
		stats.Stats.TotalPlacements,
		stats.Average,
		stats.Summary)

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Board: %dx%d (%d slots), Values: %d-%d\n\n",
			config.Name, config.Description, config.Rows, config.Columns,
			config.SlotCount, config.MinValue, config.MaxValue)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Number Challenge - Complete Instructions

GAME OBJECTIVE:
Place every randomly drawn number into the slot sequence so that occupied
slots always read in ascending order. Fill the whole board to win.

GAME MECHANICS:
• Draw: The game draws one random number at a time from the configured range
• Placement: You choose a slot for the drawn number; the slot must be empty
  and the number must fit between its occupied neighbors
• Ordering: Reading slots from index 0 upward, occupied values must never
  decrease (equal values side by side are allowed)
• Victory: Every slot filled
• Game Over: The drawn number fits in no empty slot

BOARD DISPLAY:
The board is shown as a grid, read row by row as one sequence. Slot 0 is
top-left; indexes increase left to right, then wrap to the next row.
Empty slots display as a dot (.).

🤖 AI AGENTS - CRITICAL SUCCESS STRATEGIES:

📐 PROPORTIONAL PLACEMENT (MOST IMPORTANT HEURISTIC):
Map each drawn number to a slot proportional to its position in the value
range. With a 1-1000 range and 20 slots, a draw near 50 belongs near slot 0,
a draw near 500 belongs near slot 9-10, and a draw near 950 belongs near the
last slot. Placing extreme values in middle slots wastes future flexibility.

1. **Compute the target**: target = (value - min) / (max - min) * (slots - 1)
2. **Check the exact slot first**, then the nearest empty valid slots around it
3. **Use valid_slots from responses**: every state response lists the slot
   indexes where the current number legally fits - never guess against it

🧩 GAP MANAGEMENT:
- Keep gaps between occupied values wide enough for future draws
- Two occupied neighbors that differ by 1 leave no room between them
- When two valid slots are equally close to the target, prefer the one that
  leaves the larger value gap on both sides

🔄 ITERATIVE PLAY:
1. **Analysis**: read current_value, placed_count, and valid_slots
2. **Planning**: compute the proportional target slot
3. **Execution**: place, then verify the next drawn value
4. **Refinement**: if the round is lost, check which early placement
   squeezed the range, and adjust strategy on the next round

🚨 CRITICAL PITFALLS TO AVOID:
- ❌ Placing a mid-range value at the board edges
- ❌ Ignoring the valid_slots decision aid and hitting occupied slots
- ❌ Leaving single-slot gaps between close values
- ❌ Forgetting that a rejected placement does NOT consume the drawn number -
  the same value stays pending until it is legally placed

🎮 API USAGE BEST PRACTICES:
- Use bulk_place for efficiency once a strategy is decided
- A rejected placement stops a bulk sequence; inspect stop_reason_code
- Use describe_slot to verify the exact bounds of a candidate slot
- Monitor session_stats across rounds to measure strategy improvements

PLACEMENT COMMANDS:
- place: Single placement of the current number into one slot
- bulk_place: Sequence of placements for consecutive drawn numbers
- Reset parameter available for fresh starts

VICTORY CONDITIONS:
- Fill every slot on the board
- Game displays "🎉 VICTORY!" when the board is complete

GAME OVER CONDITIONS:
- The drawn number fits in no empty slot
- Game displays "💀 GAME OVER" when this occurs

CONFIGURATION OPTIONS:
- Compact configs: Fewer slots, narrow value ranges, quick rounds
- Classic config: 20 slots, values 1-1000, the standard challenge
- Marathon configs: Large boards requiring careful long-range planning

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state, configuration, and statistics
- Use session-specific tools for multi-game management

Remember: Success requires proportional placement, careful gap management,
and trusting valid_slots over intuition. Most losses trace back to one
early placement that pinched the usable value range!

Good luck with the Number Challenge! 🎲📈`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeSlot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	index := int(args["index"].(float64))

	// Get the current game state to access the slots
	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	slotCount := len(state.Slots)
	if index < 0 || index >= slotCount {
		return mcp.NewToolResultError(fmt.Sprintf("Slot index %d is out of bounds. The board has %d slots (0-%d)",
			index, slotCount, slotCount-1)), nil
	}

	occupied := state.Slots[index] != engine.EmptySlot
	lower, upper, hasLower, hasUpper := engine.SlotBounds(state.Slots, index)

	boundsStr := describeBounds(lower, upper, hasLower, hasUpper)

	var status string
	var fits string
	if occupied {
		status = fmt.Sprintf("OCCUPIED with value %d", state.Slots[index])
		fits = fmt.Sprintf("The current number %d can NOT go here - the slot is already taken.", state.CurrentValue)
	} else {
		status = "EMPTY"
		if fitsInBounds(state.CurrentValue, lower, upper, hasLower, hasUpper) {
			fits = fmt.Sprintf("The current number %d FITS here.", state.CurrentValue)
		} else {
			fits = fmt.Sprintf("The current number %d does NOT fit here - it would break the ascending order.", state.CurrentValue)
		}
	}

	result := fmt.Sprintf(`Slot %d:
━━━━━━━━━━━━━━━━━━━━━━━━
Status: %s
Accepted values: %s
%s

Current number: %d
Valid slots for it: %v`,
		index,
		status,
		boundsStr,
		fits,
		state.CurrentValue,
		state.ValidSlots)

	return mcp.NewToolResultText(result), nil
}

func fitsInBounds(value, lower, upper int, hasLower, hasUpper bool) bool {
	if hasLower && value < lower {
		return false
	}
	if hasUpper && value > upper {
		return false
	}
	return true
}

func describeBounds(lower, upper int, hasLower, hasUpper bool) string {
	switch {
	case hasLower && hasUpper:
		return fmt.Sprintf("%d to %d (inclusive)", lower, upper)
	case hasLower:
		return fmt.Sprintf("%d or greater", lower)
	case hasUpper:
		return fmt.Sprintf("%d or smaller", upper)
	default:
		return "any value (no occupied neighbors)"
	}
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header (include cumulative total attempts)
	result.WriteString(fmt.Sprintf("Current number: %d | Placed: %d/%d | Attempts: %d\n\n",
		state.CurrentValue, state.PlacedCount, len(state.Slots), state.TotalAttempts))

	// Decision aid
	if len(state.ValidSlots) > 0 {
		result.WriteString(fmt.Sprintf("Valid slots: %v\n\n", state.ValidSlots))
	} else if !state.GameOver {
		result.WriteString("Valid slots: none\n\n")
	}

	// Board
	result.WriteString(formatBoard(state))

	// Status
	if state.GameOver {
		if state.Victory {
			result.WriteString("\n🎉 VICTORY!")
		} else {
			result.WriteString("\n💀 GAME OVER")
		}
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// formatBoard renders the slot sequence as a rows x columns grid with
// slot indexes on the left edge. Empty slots display as a dot.
func formatBoard(state *engine.GameState) string {
	columns := state.Columns
	if columns <= 0 {
		columns = len(state.Slots)
	}
	if columns == 0 {
		return ""
	}

	// Cell width driven by the widest occupied value
	width := 1
	for _, v := range state.Slots {
		if v == engine.EmptySlot {
			continue
		}
		if w := len(fmt.Sprintf("%d", v)); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i := 0; i < len(state.Slots); i += columns {
		b.WriteString(fmt.Sprintf("[%2d] ", i))
		end := i + columns
		if end > len(state.Slots) {
			end = len(state.Slots)
		}
		for j := i; j < end; j++ {
			if state.Slots[j] == engine.EmptySlot {
				b.WriteString(fmt.Sprintf("%*s ", width, "."))
			} else {
				b.WriteString(fmt.Sprintf("%*d ", width, state.Slots[j]))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatPlacementResult(result *service.PlacementResult) string {
	response := ""
	if result.Success {
		response = "✓ Placement successful\n"
	} else {
		response = "✗ Placement failed\n"
	}

	// Compact step summary (if available)
	if result.Step != nil {
		s := result.Step
		status := "✗"
		if s.Success {
			status = "✓"
		}
		response += fmt.Sprintf("Step: value %d → slot %d placed=%d %s\n",
			s.Value, s.SlotIndex, s.PlacedCount, status)
	}

	// Failure diagnostic (if available)
	if result.Attempted != nil {
		a := result.Attempted
		if a.Occupied {
			response += fmt.Sprintf("Rejected: slot %d holds %d (%s)\n", a.SlotIndex, a.SlotValue, a.Reason)
		} else {
			response += fmt.Sprintf("Rejected: value %d at slot %d (%s)\n", a.Value, a.SlotIndex, a.Reason)
		}
		if len(a.ValidSlots) > 0 {
			response += fmt.Sprintf("Valid slots: %v\n", a.ValidSlots)
		}
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkPlacementResult(sessionID string, result *service.BulkPlacementResult) string {
	var b strings.Builder

	// Session header
	slotCount := 0
	configName := ""
	if result.GameState != nil {
		slotCount = len(result.GameState.Slots)
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Slots: %d\n",
		sessionID, configName, slotCount))

	// Bulk summary
	b.WriteString(fmt.Sprintf("Executed %d/%d placements (%d → %d placed)\n",
		result.PlacementsExecuted, result.RequestedPlacements,
		result.StartPlaced, result.EndPlaced))
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s", result.StoppedReason))
		if result.StopReasonCode != "" {
			b.WriteString(fmt.Sprintf(" [%s]", result.StopReasonCode))
		}
		if result.StoppedOnPlacement > 0 {
			b.WriteString(fmt.Sprintf(" on placement %d", result.StoppedOnPlacement))
		}
		b.WriteString("\n")
	}
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated: request exceeded the limit of %d placements per call\n", result.Limit))
	}

	// Events (keep as-is, concise)
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Per-step trace for this call
	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			status := "✗"
			if s.Success {
				status = "✓"
			}
			b.WriteString(fmt.Sprintf("%d. value %d → slot %d placed=%d %s",
				s.Idx, s.Value, s.SlotIndex, s.PlacedCount, status))
			if s.Victory {
				b.WriteString(" 🎉")
			}
			b.WriteString("\n")
		}
	}

	// Failure diagnostic on first rejection
	if result.Attempted != nil {
		a := result.Attempted
		if a.Occupied {
			b.WriteString(fmt.Sprintf("\nRejected: slot %d holds %d (%s)\n", a.SlotIndex, a.SlotValue, a.Reason))
		} else {
			b.WriteString(fmt.Sprintf("\nRejected: value %d at slot %d (%s)\n", a.Value, a.SlotIndex, a.Reason))
		}
	}

	// Decision aids from final state
	if !result.GameOver {
		if len(result.ValidSlots) > 0 {
			b.WriteString(fmt.Sprintf("\nNext number: %d • Valid slots: %v\n", result.NextValue, result.ValidSlots))
		} else if result.NextValue != 0 {
			b.WriteString(fmt.Sprintf("\nNext number: %d\n", result.NextValue))
		}
	}

	// Full state at the end (kept for compatibility)
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Placement History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalPlacements)

	for i, entry := range history.Placements {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !entry.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. value %d → slot %d %s\n",
			num, entry.Value, entry.Index, status)
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	placements := state.CurrentPlacements
	total := state.CurrentPlacementsCount
	header := fmt.Sprintf("Current Round Segment — Attempts: %d\n\n", total)
	if len(placements) == 0 {
		return header + "(no placements in current round)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, entry := range placements {
		status := "✓"
		if !entry.Success {
			status = "✗"
		}
		// i is zero-based within the segment
		b.WriteString(fmt.Sprintf("%d. value %d → slot %d %s\n", i+1, entry.Value, entry.Index, status))
	}
	return b.String()
}
