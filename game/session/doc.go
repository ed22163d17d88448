// Package session owns the single game being played.
//
// A Session holds one engine, and so one board, along with a session id, the
// id of the current game and access timestamps. Resetting the session
// recreates the board from its layout and assigns a new game id; nothing is
// carried over from the previous game.
//
// Identifiers:
//
// Session and game ids are random UUIDs.
//
// Concurrency:
//
// A Session is not safe for concurrent use. The service layer serializes
// every access to it.
//
// Usage:
//
//	sess, err := session.New(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = sess.Engine.ApplyJump(from, to)
//	state := sess.Reset()
package session
