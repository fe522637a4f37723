// Command cli manages customers, products and orders from the terminal.
//
// Usage:
//
//	cli <command> [flags]
//
// Run "cli help" for the list of commands. Configuration is read from the same
// environment variables (and optional .env file) as the API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"ordertracking/cmd"
	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/pkg/errs"
)

// errUsage marks command line mistakes; the message was already printed.
var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, app *cli, args []string) error
}

var commandSet = map[string]command{
	"migrate":        {"apply (or with --down revert) the schema migrations", runMigrate},
	"seed":           {"insert the demo customers and products if absent", runSeed},
	"add-customer":   {"create a customer: --name N [--email E] [--phone P]", runAddCustomer},
	"add-product":    {"create a product: --name N --sku S --price P", runAddProduct},
	"list-products":  {"list the catalogue", runListProducts},
	"set-price":      {"change a product price: --product ID --price P", runSetPrice},
	"delete-product": {"delete an unreferenced product: --product ID", runDeleteProduct},
	"create-order":   {"place an order: --customer ID --item PRODUCT:QTY [--item ...]", runCreateOrder},
	"list-orders":    {"list recent orders: [--limit N] [--status S]", runListOrders},
	"show-order":     {"show an order with its items: --order ID", runShowOrder},
	"transition":     {"change an order status: --order ID --status S", runTransition},
	"delete-order":   {"delete an order and its items: --order ID", runDeleteOrder},
	"expire-pending": {"cancel pending orders older than --older-than D", runExpirePending},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(stdout)
		if len(args) == 0 {
			return cmd.ExitUsage
		}
		return cmd.ExitOK
	}

	c, ok := commandSet[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return cmd.ExitUsage
	}

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return report(stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli{
		name:    args[0],
		config:  configs,
		stdout:  stdout,
		stderr:  stderr,
		logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		connect: postgres.Open,
	}
	defer app.close()

	return report(stderr, c.run(ctx, app, args[1:]))
}

// report prints err as "<kind>: <message>" and returns the exit code for it.
func report(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return cmd.ExitOK
	case errors.Is(err, errUsage):
		return cmd.ExitUsage
	}

	_, _ = fmt.Fprintf(stderr, "%s: %v\n", errs.KindOf(err), err)
	return cmd.ExitCode(err)
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commandSet))
	for name := range commandSet {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "usage: cli <command> [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "commands:")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-15s %s\n", name, commandSet[name].summary)
	}
}
