//go:build cgo

package database

import _ "github.com/mattn/go-sqlite3"

// DriverName is the database/sql driver linked into this build.
const DriverName = "sqlite3"
