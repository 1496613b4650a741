package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/pgschema"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fail(err)
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			fail(err)
		}
	}
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Stdout:      os.Stdout,
		Prompt:      prompt.NewSurveyDriver(),
		OpenQuerier: openQuerier(cfg.Driver),
		Logger:      logger,
	}
	if err := app.Run(context.Background(), cfg); err != nil {
		fail(err)
	}
}

func openQuerier(driver string) cli.OpenQuerier {
	if driver == "pq" {
		return func(ctx context.Context, dsn string) (pgschema.Querier, func(), error) {
			db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
			if err != nil {
				return nil, nil, err
			}
			return pgschema.NewSQLXQuerier(db), func() { _ = db.Close() }, nil
		}
	}
	return func(ctx context.Context, dsn string) (pgschema.Querier, func(), error) {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgschema.NewPGXQuerier(pool), pool.Close, nil
	}
}

func fail(err error) {
	msg := fmt.Sprintf("formbuilder: %v", err)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.RedString(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
