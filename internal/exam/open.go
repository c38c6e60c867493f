package exam

import (
	"context"

	"github.com/mind-engage/mindengage-cbt/internal/db"
)

// DriverMemory keeps questions and results in process only.
const DriverMemory = "memory"

// OpenStore picks the store for driver. The returned close func releases
// the database handle, if any.
func OpenStore(ctx context.Context, driver, dsn string) (Store, func() error, error) {
	if driver == DriverMemory {
		return NewInMemoryStore(), func() error { return nil }, nil
	}
	dbh, err := db.Open(ctx, db.Driver(driver), dsn)
	if err != nil {
		return nil, nil, err
	}
	return NewSQLStore(dbh, driver), dbh.Close, nil
}
