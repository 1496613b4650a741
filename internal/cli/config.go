// Package cli implements the formbuilder command: it binds a model from a
// definitions directory, an OpenAPI component or a Postgres table and prints
// one rendered field.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Config holds the parsed command line.
type Config struct {
	Models  string
	OpenAPI string
	DSN     string
	Driver  string
	Table   string
	Schema  string

	Model  string
	Field  string
	Type   string
	Label  string
	Values string
	Attrs  string
	Zones  string

	Errors      string
	Variant     string
	Output      string
	Interactive bool
	Verbose     bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("formbuilder", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Models, "models", "", "directory of model definition files (json/yaml)")
	fs.StringVar(&cfg.OpenAPI, "openapi", "", "OpenAPI document path or URL")
	fs.StringVar(&cfg.DSN, "dsn", "", "Postgres connection string")
	fs.StringVar(&cfg.Driver, "driver", "pgx", "database driver with -dsn: pgx or pq")
	fs.StringVar(&cfg.Table, "table", "", "table to inspect with -dsn")
	fs.StringVar(&cfg.Schema, "schema", "public", "Postgres schema with -dsn")
	fs.StringVar(&cfg.Model, "model", "", "model name, OpenAPI component or object name")
	fs.StringVar(&cfg.Field, "field", "", "field to render")
	fs.StringVar(&cfg.Type, "type", "", "explicit control type (text, date, email, number, password, select, textarea, time_zone)")
	fs.StringVar(&cfg.Label, "label", "", "label override")
	fs.StringVar(&cfg.Values, "values", "", "select choices as Label=value pairs separated by commas")
	fs.StringVar(&cfg.Attrs, "attrs", "", "control attributes as key=value pairs separated by commas")
	fs.StringVar(&cfg.Zones, "priority-zones", "", "time zones listed first, separated by commas")
	fs.StringVar(&cfg.Errors, "errors", "", "JSON file with validation errors to display")
	fs.StringVar(&cfg.Variant, "variant", "rails", "rendering conventions: base or rails")
	fs.StringVar(&cfg.Output, "output", "", "output file (stdout if empty)")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "prompt for the field, type and label")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that exactly one model source is configured.
func (c Config) Validate() error {
	sources := 0
	for _, s := range []string{c.Models, c.OpenAPI, c.DSN} {
		if strings.TrimSpace(s) != "" {
			sources++
		}
	}
	switch {
	case sources == 0:
		return errors.New("cli: one of -models, -openapi or -dsn is required")
	case sources > 1:
		return errors.New("cli: -models, -openapi and -dsn are mutually exclusive")
	case c.DSN != "" && strings.TrimSpace(c.Table) == "":
		return errors.New("cli: -table is required with -dsn")
	case c.DSN == "" && strings.TrimSpace(c.Model) == "":
		return errors.New("cli: -model is required")
	case !c.Interactive && strings.TrimSpace(c.Field) == "":
		return errors.New("cli: -field is required unless -interactive is set")
	}
	switch c.Driver {
	case "", "pgx", "pq":
	default:
		return fmt.Errorf("cli: unknown driver %q", c.Driver)
	}
	if _, ok := form.ConventionsByName(c.Variant); !ok {
		return fmt.Errorf("cli: unknown variant %q", c.Variant)
	}
	return nil
}

// FieldOptions converts the flags into render options.
func (c Config) FieldOptions() (form.FieldOptions, error) {
	opts := form.FieldOptions{Label: c.Label}
	if strings.TrimSpace(c.Type) != "" {
		opts.Type = form.ParseControlType(c.Type)
	}

	if strings.TrimSpace(c.Values) != "" {
		pairs, err := parsePairs(c.Values)
		if err != nil {
			return form.FieldOptions{}, fmt.Errorf("cli: -values: %w", err)
		}
		opts.Values = make([]form.Choice, 0, len(pairs))
		for _, p := range pairs {
			opts.Values = append(opts.Values, form.Choice{Label: p[0], Value: p[1]})
		}
	}

	if strings.TrimSpace(c.Attrs) != "" {
		pairs, err := parsePairs(c.Attrs)
		if err != nil {
			return form.FieldOptions{}, fmt.Errorf("cli: -attrs: %w", err)
		}
		opts.Field = make(map[string]any, len(pairs))
		for _, p := range pairs {
			opts.Field[p[0]] = p[1]
		}
	}
	if strings.TrimSpace(c.Zones) != "" {
		if opts.Field == nil {
			opts.Field = map[string]any{}
		}
		opts.Field[form.PriorityZonesKey] = c.Zones
	}
	return opts, nil
}

func parsePairs(raw string) ([][2]string, error) {
	var out [][2]string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("malformed pair %q", part)
		}
		out = append(out, [2]string{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
	return out, nil
}
