package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// whereBuilder acumula condiciones AND con placeholders $n consecutivos.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// insertWithIdentity inserta una fila de catálogo y devuelve su id. Con id 0 lo asigna
// la columna identidad; con id explícito avanza la secuencia para que nunca lo repita.
func insertWithIdentity(ctx context.Context, q Querier, table, columns string, id int64, args ...any) (int64, error) {
	if id != 0 {
		columns = "id, " + columns
		args = append([]any{id}, args...)
	}
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`, table, columns, strings.Join(placeholders, ", "))

	var out int64
	if err := q.QueryRow(ctx, query, args...).Scan(&out); err != nil {
		return 0, err
	}
	if id != 0 {
		if _, err := q.Exec(ctx, bumpIdentitySQL(table), out); err != nil {
			return 0, fmt.Errorf("avanzar secuencia de %s: %w", table, err)
		}
	}
	return out, nil
}

// bumpIdentitySQL usa la secuencia que Postgres crea para la identidad (<tabla>_id_seq).
// Solo la avanza: un id explícito menor que la marca actual no la hace retroceder.
func bumpIdentitySQL(table string) string {
	seq := table + "_id_seq"
	return fmt.Sprintf(`SELECT setval('%s', $1::bigint) FROM %s WHERE $1::bigint >= last_value`, seq, seq)
}
