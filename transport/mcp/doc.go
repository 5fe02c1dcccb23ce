// Package mcp provides Model Context Protocol server implementation for the Number Challenge game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with board visualization
//   - place: Place the current number into a slot
//   - bulk_place: Place a sequence of drawn numbers
//   - reset_game: Start a fresh round
//   - placement_history: Retrieve placement history with pagination
//   - session_stats: Cumulative win/loss statistics
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - describe_slot: Inspect one slot's value bounds
//   - game_instructions: Comprehensive rules and strategy notes
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Session Management:
//
// All game tools take a session_id parameter for multi-session gameplay.
// AI agents can manage multiple concurrent game sessions independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play the game
//   - Develop and test placement strategies
//   - Analyze board states and make decisions
//   - Manage multiple game sessions
//   - Learn from placement history and per-session statistics
package mcp
