// Package cli provides the interactive SoundClub command-line client.
//
// It wires configuration, the local session database, the REST transport and
// the state containers into an interactive REPL. A previously persisted
// session is restored on startup, so a user stays signed in across runs.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Profile management (bio, avatar, account deletion)
//   - Product catalog browsing, search and cart operations
//   - Forum posts, replies and tags
//   - Music, artist, album, notice and video listings
//   - Favorites for posts and products
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
