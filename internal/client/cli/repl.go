package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	helpLines() []string
	Exec(ctx context.Context, name string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the recipebox CLI.
//
// It reads a line from the provided scanner, splits it into fields and hands
// the first one, the command, to Exec. The loop exits on scanner EOF, on
// ctx cancellation or when the user types "exit" or "quit".
//
// Errors returned by Exec are ignored here apart from unknown commands;
// commands report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("rb %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Signed in. Available commands:")
			} else {
				printlnFn("Not signed in. Available commands:")
			}
			for _, l := range a.helpLines() {
				printlnFn(l)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, args); errors.Is(err, errUnknownCommand) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
