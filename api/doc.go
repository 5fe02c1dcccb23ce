// Package api provides HTTP REST API handlers for the Number Challenge game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - Placement history with pagination
//   - Session statistics
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/unified - Multi-session comparison view
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/place - Place the current value into a slot
//   - POST /api/sessions/{id}/bulk-place - Place a sequence of values
//   - POST /api/sessions/{id}/reset - Reset the round
//   - GET /api/sessions/{id}/history - Placement history with pagination
//   - GET /api/sessions/{id}/stats - Cumulative win/loss statistics
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON.
//
// Place (POST /api/sessions/{id}/place)
//
//	{
//	  "slot_index": 7,
//	  "reset": false   // optional reset before placing
//	}
//
//	Response:
//	  - step: { idx, slot_index, value, placed_count, success } // when placed
//	  - attempted: { slot_index, value, slot_value, occupied, reason, valid_slots } // when rejected
//	  - game_state with valid_slots decision aid
//
// Bulk Place (POST /api/sessions/{id}/bulk-place)
//
//	{
//	  "slot_indexes": [0, 5, 12],
//	  "reset": true
//	}
//
//	Response:
//	  - requested_placements, placements_executed
//	  - stopped_reason (text), stop_reason_code (enum), stopped_on_placement (1-based), truncated, limit
//	  - steps: [{ idx, slot_index, value, placed_count, success, victory? }]
//	  - attempted: failed slot diagnostics on first rejection
//	  - start_placed, end_placed, valid_slots, next_value
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
