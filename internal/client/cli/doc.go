// Package cli provides the interactive Smart Bill command-line client.
//
// It wires configuration, the local session store, the REST API services,
// and an interactive REPL. Typical flow: load the persisted session, start
// a background expiry watcher, and execute user commands.
//
// Key features:
//   - Login / Signup / Forgot password / Logout
//   - Dashboard counts
//   - Category and product management (admin)
//   - Order composition with a running total, submitted as a bill
//   - Bill history with re-download and delete
//   - User administration (admin)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
