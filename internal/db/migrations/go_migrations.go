// Package migrations contains the dialect-aware Go migrations for the SQL
// album store. Column types differ per driver (MySQL cannot index unbounded
// TEXT), so the DDL is chosen at run time instead of living in .sql files.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// keyType is the column type for indexed string keys. MySQL's default
// collation folds case and accents, which would merge keys that
// domain.NameKey keeps apart, so keys compare as bytes there.
func keyType() string {
	if dialect == "mysql" {
		return "VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin"
	}
	return "TEXT"
}
