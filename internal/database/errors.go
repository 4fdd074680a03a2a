package database

import "fmt"

// QueryError reports a failed catalog query. Table is empty for the table
// listing itself.
type QueryError struct {
	Op    string
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to get %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to get %s for `%s`: %v", e.Op, e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
