// Package database handles database connections, transactions and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration.
//
// # Connect
//
// Connect opens the configured driver and pings it. SQLite is meant for tests and
// local runs; ":memory:" works because the pool is pinned to one connection.
//
// # Transactions
//
// Transactor.InTx runs one unit of work in a transaction and stores the transaction in
// the context. Code running inside resolves its handle with Conn, so the same repository
// code works with and without a surrounding transaction.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for the schema integrity check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.NewTransactor(db).InTx(ctx, func(ctx context.Context) error {
//	    return database.Conn(ctx, db).Create(&category).Error
//	})
package database
