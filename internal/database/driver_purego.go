//go:build !cgo

package database

import _ "modernc.org/sqlite"

// DriverName is the database/sql driver linked into this build.
const DriverName = "sqlite"
