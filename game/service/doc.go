// Package service provides the business logic layer for the Cities game.
//
// The service package implements:
//   - Multi-session game management
//   - Turn processing with serialized access to each game
//   - Catalog inspection for clients
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine.Game over the shared,
// read-only catalog. Games are not safe for concurrent use, so the service
// serializes every call that touches one.
//
// Usage:
//
//	cat, _ := catalog.Default()
//	sessionMgr := session.NewManager(cat, nil)
//	gameService := service.NewGameService(sessionMgr, cat)
//
//	info, err := gameService.CreateSession(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Play(ctx, info.ID, "/new_game")
package service
