package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/jackc/pgerrcode"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// executor is satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

type scanFunc[T any] func(row rowScanner) (T, error)

type txCtxKey struct{}

// returning renders a RETURNING suffix listing columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// prefixed qualifies columns with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// conn returns the transaction carried by ctx, or the pool.
func (db *DB) conn(ctx context.Context) executor {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// RunInTx runs fn inside a transaction carried by the context passed to fn.
// Every repository call made with that context joins the transaction. A
// nested call reuses the outer transaction. Any error from fn rolls the
// whole transaction back.
func (db *DB) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.RunInTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.RunInTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, db.classify(err))
	}

	return nil
}

// classify maps driver errors onto store sentinels.
func (db *DB) classify(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolated, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (db *DB) logFailure(ctx context.Context, op string, err error, msg string) {
	retryable := false
	if db.errorClassificator != nil {
		retryable = db.errorClassificator.Classify(err) == Retryable
	}
	logger.FromContext(ctx).Err(err).
		Str("func", op).
		Bool("retryable", retryable).
		Msg(msg)
}

// queryOne runs a single-row query. sql.ErrNoRows becomes [ErrNotFound].
func queryOne[T any](ctx context.Context, db *DB, op string, q sq.Sqlizer, scan scanFunc[T]) (T, error) {
	var zero T

	query, args, err := q.ToSql()
	if err != nil {
		db.logFailure(ctx, op, err, "failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		db.logFailure(ctx, op, err, "failed to execute query")
		return zero, db.classify(err)
	}

	return item, nil
}

// queryMany runs a multi-row query. An empty result is an empty slice.
func queryMany[T any](ctx context.Context, db *DB, op string, q sq.Sqlizer, scan scanFunc[T]) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		db.logFailure(ctx, op, err, "failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		db.logFailure(ctx, op, err, "failed to execute query")
		return nil, db.classify(err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			db.logFailure(ctx, op, scanErr, "failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		db.logFailure(ctx, op, err, "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// execAffecting runs a statement and returns the number of affected rows.
func execAffecting(ctx context.Context, db *DB, op string, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		db.logFailure(ctx, op, err, "failed to build statement")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		db.logFailure(ctx, op, err, "failed to execute statement")
		return 0, db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// execOne runs a statement that must affect exactly one row.
func execOne(ctx context.Context, db *DB, op string, q sq.Sqlizer) error {
	affected, err := execAffecting(ctx, db, op, q)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// nextNumber returns max(column)+1 over rows matching where, starting at 1.
func nextNumber(ctx context.Context, db *DB, op, table, column string, where sq.Sqlizer) (int, error) {
	q := psql.Select(fmt.Sprintf("COALESCE(MAX(%s), 0) + 1", column)).From(table).Where(where)
	return queryOne(ctx, db, op, q, func(row rowScanner) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	})
}

func exists(ctx context.Context, db *DB, op, table string, where sq.Sqlizer) (bool, error) {
	q := psql.Select("COUNT(*) > 0").From(table).Where(where)
	return queryOne(ctx, db, op, q, func(row rowScanner) (bool, error) {
		var found bool
		err := row.Scan(&found)
		return found, err
	})
}
