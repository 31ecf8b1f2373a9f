package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// commander is the command surface the REPL needs. *App satisfies it;
// tests use a stub.
type commander interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Stats(ctx context.Context) error
}

const helpText = "Available commands: (l)ist, filter [label], sort <column>, add, edit [id], delete [id], reset, stats, exit"

// runREPL reads one command per line and dispatches it. It returns on EOF,
// on "exit"/"quit", or when ctx is done. Handler errors are not fatal: the
// handlers report them and the loop carries on.
func runREPL(ctx context.Context, a commander, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "users (%s) > ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				fmt.Fprintln(w)
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)
		case "l", "list":
			_ = a.List(ctx)
		case "filter":
			_ = a.Filter(ctx, args)
		case "sort":
			_ = a.Sort(ctx, args)
		case "add":
			_ = a.Add(ctx)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "reset":
			_ = a.Reset(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if eof {
			return
		}
	}
}
