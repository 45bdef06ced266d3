// Package cli provides the interactive recipebox command-line client.
//
// It wires configuration, the local SQLite store, the HTTP gateway, the
// session holder, the resource stores and the router into a REPL. Every
// command is bound to a route: the navigator is consulted first and a
// redirect or block is reported instead of running the command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the command table in commands.go.
package cli
