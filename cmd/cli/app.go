package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"ordertracking/cmd"
	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// cli carries what a subcommand needs; the database is opened on first use.
type cli struct {
	name    string
	config  cmd.Config
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	connect func(dsn string, pool postgres.PoolConfig) (*gorm.DB, error)

	db   *gorm.DB
	root *cmd.CompositionRoot
}

func (a *cli) flags() *flag.FlagSet {
	fs := flag.NewFlagSet(a.name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *cli) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(a.stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}
	return nil
}

func (a *cli) app() (*cmd.CompositionRoot, error) {
	if a.root != nil {
		return a.root, nil
	}

	db, err := a.connect(a.config.DSN(), a.config.Pool())
	if err != nil {
		return nil, errs.NewStoreCorruptionError("connect", err)
	}

	a.db = db
	a.root = cmd.NewCompositionRoot(a.config, db, a.logger)
	return a.root, nil
}

func (a *cli) close() {
	if a.db != nil {
		_ = postgres.Close(a.db)
	}
}

func (a *cli) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.stdout, format, args...)
}

// idFlag parses a required positive id given as --name.
func idFlag(name, raw string) (kernel.ID, error) {
	if raw == "" {
		return kernel.ID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.ParseID(raw)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// itemList collects repeated --item PRODUCT:QTY flags.
type itemList []commands.OrderLine

func (l *itemList) String() string {
	parts := make([]string, len(*l))
	for i, line := range *l {
		parts[i] = fmt.Sprintf("%s:%d", line.ProductID, line.Quantity)
	}
	return strings.Join(parts, ",")
}

func (l *itemList) Set(value string) error {
	line, err := parseItem(value)
	if err != nil {
		return err
	}
	*l = append(*l, line)
	return nil
}

func parseItem(value string) (commands.OrderLine, error) {
	rawID, rawQuantity, ok := strings.Cut(value, ":")
	if !ok {
		return commands.OrderLine{}, errors.New("expected PRODUCT:QTY")
	}

	productID, err := kernel.ParseID(rawID)
	if err != nil {
		return commands.OrderLine{}, fmt.Errorf("product id: %w", err)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil {
		return commands.OrderLine{}, fmt.Errorf("quantity: %w", err)
	}

	return commands.OrderLine{ProductID: productID, Quantity: quantity}, nil
}
