// Package mcp provides a Model Context Protocol server for the Cities game.
//
// The server is a thin client: every tool call is proxied to the REST API,
// so an agent plays the same sessions a browser or curl would.
//
// MCP Tools:
//   - create_session, list_sessions, get_session, delete_session
//   - game_state: Current state of a session
//   - play: Send one line of input (city name, /new_game or /exit_game)
//   - catalog_info: Catalog size and per-letter counts
//   - game_rules: Rules text
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: mounted at /mcp by the server command
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
