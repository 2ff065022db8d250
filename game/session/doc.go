// Package session provides session management for the Cities game.
//
// The session package implements:
//   - Thread-safe in-memory session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the session manager that handles all session operations. Every
// session gets its own engine.Game built over the manager's shared catalog
// and its own random source.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. Lookups are
// case-insensitive.
//
// Usage:
//
//	cat, _ := catalog.Default()
//	manager := session.NewManager(cat, nil)
//
//	sess, err := manager.Create("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
// Sessions live only in memory. Idle sessions are removed by
// CleanupExpiredSessions, which the game service calls under its own lock.
package session
