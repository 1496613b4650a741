package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/pgschema"
)

// OpenQuerier connects to dsn. The returned close func releases the
// connection.
type OpenQuerier func(ctx context.Context, dsn string) (pgschema.Querier, func(), error)

// App wires the command's collaborators.
type App struct {
	Stdout      io.Writer
	Prompt      prompt.Driver
	OpenQuerier OpenQuerier
	Logger      *zap.Logger
	// ReadFile reads -errors payloads; defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

var controlChoices = []string{"infer", "text", "date", "email", "number", "password", "select", "textarea", "time_zone"}

// Run renders the configured field to Stdout, or to cfg.Output.
func (a *App) Run(ctx context.Context, cfg Config) error {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	readFile := a.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	record, err := a.bind(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Debug("model bound", zap.String("object", record.ObjectName()), zap.Int("columns", len(record.Columns())))

	if cfg.Errors != "" {
		data, err := readFile(cfg.Errors)
		if err != nil {
			return fmt.Errorf("cli: read errors: %w", err)
		}
		payload, err := model.DecodeErrorPayload(data)
		if err != nil {
			return fmt.Errorf("cli: decode errors: %w", err)
		}
		mapping := record.ApplyErrorPayload(payload)
		logger.Debug("errors applied", zap.Int("fields", len(mapping.Fields)), zap.Int("form", len(mapping.Form)))
	}

	if cfg.Interactive {
		if cfg, err = a.ask(ctx, cfg, record); err != nil {
			return err
		}
	}

	opts, err := cfg.FieldOptions()
	if err != nil {
		return err
	}

	themes, err := form.NewThemeRegistry()
	if err != nil {
		return err
	}

	builder, err := form.New(record,
		form.WithLogger(logger),
		form.WithThemeProvider(themes, form.ThemeName, variantName(cfg.Variant)),
	)
	if err != nil {
		return err
	}

	html, err := builder.RenderField(cfg.Field, opts)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(html.String()+"\n"), 0o644); err != nil {
			return fmt.Errorf("cli: write output: %w", err)
		}
		_, err = fmt.Fprintf(a.Stdout, "Field written to %s\n", cfg.Output)
		return err
	}
	_, err = fmt.Fprintln(a.Stdout, html.String())
	return err
}

func (a *App) bind(ctx context.Context, cfg Config) (*model.Record, error) {
	switch {
	case cfg.Models != "":
		store, err := model.LoadFS(os.DirFS(cfg.Models))
		if err != nil {
			return nil, err
		}
		record, ok := store.Record(cfg.Model)
		if !ok {
			return nil, fmt.Errorf("cli: model %q not found (have %s)", cfg.Model, strings.Join(store.Names(), ", "))
		}
		return record, nil

	case cfg.OpenAPI != "":
		src, err := openAPISource(cfg.OpenAPI)
		if err != nil {
			return nil, err
		}
		data, err := openapi.NewLoader(openapi.WithHTTPFallback(10*time.Second)).Load(ctx, src)
		if err != nil {
			return nil, err
		}
		return openapi.RecordFromDocument(ctx, data, cfg.Model)

	default:
		if a.OpenQuerier == nil {
			return nil, errors.New("cli: no database driver configured")
		}
		querier, closeFn, err := a.OpenQuerier(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("cli: connect: %w", err)
		}
		defer closeFn()

		inspector, err := pgschema.NewInspector(querier, pgschema.WithSchema(cfg.Schema), pgschema.WithLogger(a.Logger))
		if err != nil {
			return nil, err
		}
		return inspector.Record(ctx, cfg.Table, cfg.Model)
	}
}

func (a *App) ask(ctx context.Context, cfg Config, record *model.Record) (Config, error) {
	if a.Prompt == nil {
		return cfg, errors.New("cli: interactive mode needs a prompt driver")
	}

	fields := record.FieldNames()
	if cfg.Field == "" {
		idx, err := a.Prompt.Select(ctx, prompt.SelectConfig{Message: "Field", Options: fields})
		if err != nil {
			return cfg, err
		}
		if idx < 0 || idx >= len(fields) {
			return cfg, fmt.Errorf("cli: no field selected")
		}
		cfg.Field = fields[idx]
	}

	if cfg.Type == "" {
		idx, err := a.Prompt.Select(ctx, prompt.SelectConfig{Message: "Control", Options: controlChoices})
		if err != nil {
			return cfg, err
		}
		if idx > 0 && idx < len(controlChoices) {
			cfg.Type = controlChoices[idx]
		}
	}

	if cfg.Label == "" {
		label, err := a.Prompt.Input(ctx, prompt.InputConfig{Message: "Label", Default: form.Humanize(cfg.Field)})
		if err != nil {
			return cfg, err
		}
		if label != form.Humanize(cfg.Field) {
			cfg.Label = label
		}
	}

	if form.ParseControlType(cfg.Type) == form.ControlSelect && cfg.Values == "" {
		values, err := a.Prompt.Input(ctx, prompt.InputConfig{
			Message: "Choices (Label=value, ...)",
			Validator: func(s string) error {
				_, err := parsePairs(s)
				return err
			},
		})
		if err != nil {
			return cfg, err
		}
		cfg.Values = values
	}
	return cfg, nil
}

func openAPISource(raw string) (openapi.Source, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return openapi.SourceFromURL(raw)
	}
	return openapi.SourceFromFile(raw), nil
}

func variantName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base", "foundation":
		return "base"
	default:
		return "rails"
	}
}
