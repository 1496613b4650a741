package pgschema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	dialectPostgres = "postgres"
	defaultSchema   = "public"

	colColumnName      = "column_name"
	colDataType        = "data_type"
	colTableSchema     = "table_schema"
	colTableName       = "table_name"
	colOrdinalPosition = "ordinal_position"
)

var (
	// ErrTableNotFound is returned when the table has no visible columns.
	ErrTableNotFound = errors.New("pgschema: table not found")
	// ErrBuildingQueryFailed wraps goqu build failures.
	ErrBuildingQueryFailed = errors.New("pgschema: building query failed")
)

// Inspector loads column metadata for tables in one schema.
type Inspector struct {
	querier Querier
	schema  string
	logger  *zap.Logger
}

type Option func(*Inspector)

// WithSchema selects the schema to inspect. Defaults to "public".
func WithSchema(schema string) Option {
	return func(i *Inspector) {
		if s := strings.TrimSpace(schema); s != "" {
			i.schema = s
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(i *Inspector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func NewInspector(querier Querier, opts ...Option) (*Inspector, error) {
	if querier == nil {
		return nil, errors.New("pgschema: querier is required")
	}
	i := &Inspector{querier: querier, schema: defaultSchema, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i, nil
}

// Columns returns the columns of table in ordinal order.
func (i *Inspector) Columns(ctx context.Context, table string) ([]model.Column, error) {
	query, err := i.buildColumnsQuery(table)
	if err != nil {
		return nil, err
	}
	i.logger.Debug("inspect table", zap.String("schema", i.schema), zap.String("table", table))

	rows, err := i.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgschema: query columns of %q: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var columns []model.Column
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, fmt.Errorf("pgschema: scan column of %q: %w", table, err)
		}
		columns = append(columns, model.Column{Name: name, Kind: KindForDataType(dataType)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgschema: iterate columns of %q: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s.%s", ErrTableNotFound, i.schema, table)
	}
	return columns, nil
}

// Record builds an empty record named objectName over the columns of table.
func (i *Inspector) Record(ctx context.Context, table, objectName string) (*model.Record, error) {
	columns, err := i.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(objectName) == "" {
		objectName = Singularize(table)
	}
	return model.NewRecord(objectName, columns...), nil
}

func (i *Inspector) buildColumnsQuery(table string) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("%w: table name is required", ErrBuildingQueryFailed)
	}
	stmt := goqu.Dialect(dialectPostgres).
		From(goqu.S("information_schema").Table("columns")).
		Select(colColumnName, colDataType).
		Where(
			goqu.C(colTableSchema).Eq(i.schema),
			goqu.C(colTableName).Eq(table),
		).
		Order(goqu.I(colOrdinalPosition).Asc())

	query, _, err := stmt.ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}
	return query, nil
}

// KindForDataType maps an information_schema data_type onto a storage kind.
func KindForDataType(dataType string) model.StorageKind {
	switch strings.ToLower(strings.TrimSpace(dataType)) {
	case "text":
		return model.KindText
	case "smallint", "integer", "bigint":
		return model.KindInteger
	case "numeric", "decimal", "money":
		return model.KindDecimal
	case "real", "double precision":
		return model.KindFloat
	case "date":
		return model.KindDate
	case "timestamp without time zone", "timestamp with time zone":
		return model.KindDateTime
	case "time without time zone", "time with time zone":
		return model.KindTime
	case "boolean":
		return model.KindBoolean
	case "bytea":
		return model.KindBinary
	case "json", "jsonb":
		return model.KindJSON
	case "uuid":
		return model.KindUUID
	default:
		return model.KindString
	}
}

// Singularize derives an object name from a plural table name: "users" ->
// "user", "categories" -> "category".
func Singularize(table string) string {
	name := strings.ToLower(strings.TrimSpace(table))
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "sses"), strings.HasSuffix(name, "xes"):
		return strings.TrimSuffix(name, "es")
	case strings.HasSuffix(name, "ss"):
		return name
	case strings.HasSuffix(name, "s"):
		return strings.TrimSuffix(name, "s")
	default:
		return name
	}
}
