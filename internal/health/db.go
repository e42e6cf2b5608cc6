package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const defaultDBTimeout = 5 * time.Second

// DBProbe opens a dedicated connection for every check so it reports on the
// database itself rather than on the state of the application pool.
type DBProbe struct {
	databaseURL string
	timeout     time.Duration
}

func NewDBProbe(databaseURL string) *DBProbe {
	return &DBProbe{databaseURL: databaseURL, timeout: defaultDBTimeout}
}

func (p *DBProbe) Name() string {
	return "db"
}

func (p *DBProbe) Check(ctx context.Context) Result {
	if p.databaseURL == "" {
		return failed("Missing DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, p.databaseURL)
	if err != nil {
		return failed("%v", err)
	}
	defer conn.Close(context.Background())

	var one int
	if err := conn.QueryRow(ctx, "select 1").Scan(&one); err != nil {
		return failed("%v", err)
	}

	return Result{OK: true, Result: &one}
}
