package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. They are
// applied through golang-migrate's iofs driver on startup when migrations
// are enabled.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest migration in FS.
const Version = 1
