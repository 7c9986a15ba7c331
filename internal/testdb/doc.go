//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Each test runs inside a transaction that is rolled back when it finishes,
// so tests can share one database and run in parallel:
//
//	func TestUserStore(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
//
// Tests are skipped unless CONTACTS_TEST_DB_URL or CONTACTS_DATABASE_URL is
// set. The schema is migrated to the latest version once per process.
package testdb
