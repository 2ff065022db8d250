// Package websocket provides WebSocket transport for the Cities game.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Broadcasting of turn output after each played line
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. The Hub's event loop owns the client registry;
// every register, unregister and broadcast goes through its channels.
// Each client connection has a read pump and a write pump goroutine.
//
// Message Protocol:
//
// Clients only listen. Each outgoing frame is one JSON document:
//
//	{"session_id":"ab12","event":"turn","messages":["..."],"game_state":{...}}
//
// Session Integration:
//
// Clients pick their session with the ?session=ab12 query parameter.
// Messages are delivered only to clients watching the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	hub.BroadcastTurn(sessionID, result.Messages, result.GameState)
package websocket
