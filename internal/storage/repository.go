package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expensetracker/internal/core"

	_ "modernc.org/sqlite"
)

// DefaultDBPath is the database file used when none is configured.
const DefaultDBPath = "expenses.db"

const selectColumns = `id, COALESCE(date, ''), COALESCE(category, ''), COALESCE(amount, 0.0), COALESCE(description, '')`

type SQLiteRepository struct {
	db *sql.DB
}

var _ Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection keeps every write serial.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert stores one expense and returns the id SQLite assigned to it.
func (r *SQLiteRepository) Insert(ctx context.Context, e core.NewExpense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, category, amount, description) VALUES (?, ?, ?, ?)`,
		e.Date, e.Category, e.Amount, e.Description)
	if err != nil {
		return 0, core.NewStorageError("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, core.NewStorageError("insert", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"category", e.Category,
		"amount", e.Amount,
		"date", e.Date)

	return id, nil
}

// SelectAll returns every expense ordered by id.
func (r *SQLiteRepository) SelectAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM expenses ORDER BY id`)
	if err != nil {
		return nil, core.NewStorageError("select all", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Amount, &e.Description); err != nil {
			return nil, core.NewStorageError("scan expense", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageError("select all", err)
	}
	return out, nil
}

func (r *SQLiteRepository) SelectByID(ctx context.Context, id int64) (core.Expense, bool, error) {
	var e core.Expense
	err := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM expenses WHERE id = ?`, id).
		Scan(&e.ID, &e.Date, &e.Category, &e.Amount, &e.Description)
	if err == sql.ErrNoRows {
		return core.Expense{}, false, nil
	}
	if err != nil {
		return core.Expense{}, false, core.NewStorageError("select by id", err)
	}
	return e, true, nil
}

// DeleteByID reports whether a row was removed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, core.NewStorageError("delete by id", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, core.NewStorageError("delete by id", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "Expense deleted", "id", id)
	}
	return n > 0, nil
}

// DeleteAll removes every row in a single statement. AUTOINCREMENT keeps
// the removed ids from being handed out again.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses`)
	if err != nil {
		return 0, core.NewStorageError("delete all", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, core.NewStorageError("delete all", err)
	}
	slog.InfoContext(ctx, "All expenses deleted", "count", n)
	return n, nil
}

// SumByCategory groups by the exact category string. NULL categories left by
// older databases fold into the empty category.
func (r *SQLiteRepository) SumByCategory(ctx context.Context) ([]core.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(category, '') AS cat, COALESCE(SUM(amount), 0.0)
		FROM expenses
		GROUP BY cat
		ORDER BY cat`)
	if err != nil {
		return nil, core.NewStorageError("sum by category", err)
	}
	defer rows.Close()

	var out []core.CategoryTotal
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, core.NewStorageError("scan category total", err)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageError("sum by category", err)
	}
	return out, nil
}

// SumTotal returns 0 for an empty ledger.
func (r *SQLiteRepository) SumTotal(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0.0) FROM expenses`).Scan(&total); err != nil {
		return 0, core.NewStorageError("sum total", err)
	}
	return total, nil
}
