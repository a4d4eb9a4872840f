package loader

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/startup-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/startup-dashboard/internal/dataset"
)

const (
	startupTable     = "startup_data"
	competitorsTable = "competitors_data"
)

// PostgresLoader lê as mesmas colunas dos arquivos a partir de duas tabelas
type PostgresLoader struct {
	conn postgres.Queryer
}

func NewPostgresLoader(conn postgres.Queryer) *PostgresLoader {
	return &PostgresLoader{conn: conn}
}

func companiesQuery() (string, []interface{}, error) {
	return squirrel.
		Select(quoteAll(companyColumns)...).
		From(startupTable).
		OrderBy(quote(ColCompanyID)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func competitorsQuery() (string, []interface{}, error) {
	return squirrel.
		Select(quoteAll(competitorColumns)...).
		From(competitorsTable).
		OrderBy(quote(ColCompanyID)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// quote preserva a caixa de colunas como "EBITDA"
func quote(col string) string {
	return `"` + col + `"`
}

func quoteAll(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, quote(c))
	}
	return out
}

func (l *PostgresLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	primary, err := l.readTable(ctx, startupTable, companiesQuery)
	if err != nil {
		return nil, err
	}

	competitors, err := l.readTable(ctx, competitorsTable, competitorsQuery)
	if err != nil {
		return nil, err
	}

	return build(ctx, primary, competitors)
}

func (l *PostgresLoader) readTable(
	ctx context.Context,
	name string,
	query func() (string, []interface{}, error),
) (*Table, error) {
	sqlQuery, args, err := query()
	if err != nil {
		return nil, errors.Wrapf(err, "loader: build query for %s", name)
	}

	rows, err := l.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: query %s", name)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "loader: columns of %s", name)
	}

	table := &Table{Name: name, Header: header}
	for rows.Next() {
		values := make([]sql.NullString, len(header))
		dest := make([]interface{}, len(header))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "loader: scan %s", name)
		}

		record := make([]string, len(header))
		for i, v := range values {
			record[i] = v.String
		}
		table.Rows = append(table.Rows, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "loader: iterate %s", name)
	}

	return table, nil
}
