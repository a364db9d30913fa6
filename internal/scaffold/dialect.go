package scaffold

import (
	"fmt"
	"strings"
)

// Dialect identifies the Sequelize dialect baked into the wiring module.
type Dialect string

// Supported dialects, in the order they are offered to the operator.
const (
	MySQL     Dialect = "mysql"
	Postgres  Dialect = "postgres"
	DB2       Dialect = "db2"
	MariaDB   Dialect = "mariadb"
	MSSQL     Dialect = "mssql"
	Oracle    Dialect = "oracle"
	Snowflake Dialect = "snowflake"
	SQLite    Dialect = "sqlite"
)

// Dialects lists every supported dialect in menu order.
var Dialects = []Dialect{MySQL, Postgres, DB2, MariaDB, MSSQL, Oracle, Snowflake, SQLite}

// ParseDialect returns the Dialect named by s. Values outside the supported
// set are rejected so that nothing arbitrary reaches the generated source.
func ParseDialect(s string) (Dialect, error) {
	for _, d := range Dialects {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unsupported dialect %q: choose one of %s", s, strings.Join(DialectNames(), ", "))
}

// DialectNames returns the supported dialects as plain strings.
func DialectNames() []string {
	names := make([]string, len(Dialects))
	for i, d := range Dialects {
		names[i] = string(d)
	}
	return names
}

func (d Dialect) String() string { return string(d) }

// ConfigMode selects how the wiring module obtains connection settings.
type ConfigMode bool

const (
	// ConfigService loads settings through @nestjs/config's ConfigService.
	ConfigService ConfigMode = true
	// DirectEnv reads process.env directly.
	DirectEnv ConfigMode = false
)
