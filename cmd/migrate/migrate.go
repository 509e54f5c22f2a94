package migrate

import (
	"io"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
)

const (
	nodecheckMigrationSource = "modules/nodecheck/database/postgresql/migrations"
	votersMigrationSource    = "modules/voters/database/postgresql/migrations"
)

// migrationModule is one module schema. Modules apply in declaration order on
// up and reverse order on down, the voters tables reference nodecheck producers.
type migrationModule struct {
	name   string
	source string
	table  string
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

func parseDatabaseURL(databaseURL string) (*url.URL, error) {
	if databaseURL == "" {
		return nil, errors.New("--database is required")
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[u.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", u.Scheme)
	}
	return u, nil
}

func newMigrate(databaseURL *url.URL, module migrationModule, out io.Writer) (*migrate.Migrate, error) {
	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {module.table}})
	m, err := migrate.New("file://"+module.source, newDatabaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &moduleLogger{
		out:    out,
		module: module.name,
	}
	return m, nil
}
