package migrate

import (
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*moduleLogger)(nil)

// moduleLogger prints migrate progress lines prefixed with the module name.
type moduleLogger struct {
	out     io.Writer
	module  string
	verbose bool
}

func (l *moduleLogger) Printf(format string, v ...interface{}) {
	_, _ = fmt.Fprintf(l.out, "[%s] "+format, append([]interface{}{l.module}, v...)...)
}

func (l *moduleLogger) Verbose() bool {
	return l.verbose
}
