package console

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type HandlerFunc func(ctx context.Context, args []string) string

type route struct {
	usage   string
	handler HandlerFunc
}

// Router maps the first word of a command line to its handler.
type Router struct {
	routes map[string]route
	order  []string
}

func NewRouter() *Router {
	return &Router{routes: make(map[string]route)}
}

func (r *Router) HandleFunc(name, usage string, handler HandlerFunc) {
	if _, exists := r.routes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.routes[name] = route{usage: usage, handler: handler}
}

// Usage lists every registered command in registration order.
func (r *Router) Usage() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range r.order {
		fmt.Fprintf(&b, "  %s\n", r.routes[name].usage)
	}
	return b.String()
}

func (r *Router) Dispatch(ctx context.Context, line string) string {
	args, err := SplitArgs(line)
	if err != nil {
		return fmt.Sprintf("Could not read command: %v\n\n", err)
	}
	if len(args) == 0 {
		return ""
	}
	rt, ok := r.routes[strings.ToLower(args[0])]
	if !ok {
		return fmt.Sprintf("Unknown command %q. Type help for a list of commands.\n\n", args[0])
	}
	return rt.handler(ctx, args[1:])
}

// SplitArgs splits on spaces; double quotes group words, e.g.
// add "Cheese Burger" MAIN 1 650 8.99 3.10
func SplitArgs(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(strings.TrimSpace(line)))
	cr.Comma = ' '
	fields, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	args := fields[:0]
	for _, f := range fields {
		if f != "" {
			args = append(args, f)
		}
	}
	return args, nil
}

// Serve runs one command per input line until EOF or quit.
func Serve(ctx context.Context, router *Router, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		logger.Debug().Str("command", line).Msg("dispatching")
		fmt.Fprint(out, router.Dispatch(ctx, line))
	}
}
