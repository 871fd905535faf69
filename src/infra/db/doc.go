// Package db provides database connection and transaction management.
//
// This package is responsible for:
//   - PostgreSQL connection pool lifecycle (create on startup, close on shutdown)
//   - Parameterized query execution with timing and logging
//   - Transactions on a dedicated connection with commit/rollback
//   - Schema migrations
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	res, err := db.Query(ctx, pg, `SELECT id, nome FROM categorias`, nil, pgx.RowToStructByName[domain.Category])
//
//	err = pg.Transaction(ctx, func(ctx context.Context, tx *db.Executor) error {
//	    _, err := db.Exec(ctx, tx, `UPDATE usuarios SET ativo = false WHERE id = $1`, id)
//	    return err
//	})
package db
