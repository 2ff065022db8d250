// Package api provides HTTP REST API handlers for the Cities game.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game snapshot
//   - POST /api/sessions/{id}/input - Play one line of input
//   - GET /api/sessions/{id}/qr - PNG QR code linking to the session
//
// Other:
//   - GET /api/catalog - Catalog size and per-letter counts
//   - GET /api/health - Liveness probe
//   - GET /ws?session={id} - WebSocket stream of turn output
//
// Input is sent as JSON:
//
//	{"input": "Москва"}
//
// Commands are ordinary input lines: "/new_game" starts a game and
// "/exit_game" ends the session for good.
//
// Error Handling:
//
// Errors are returned as JSON with an HTTP status code. Unknown sessions
// map to 404, malformed bodies to 400:
//
//	{"error": "session not found: ..."}
package api
