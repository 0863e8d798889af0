// Package store holds the data-access layer: one repository per
// resource, with every statement built through squirrel against the
// shared pgx pool. Arguments arrive already validated; write
// operations report affected-row counts and leave their
// interpretation (404 vs 200) to the caller.
package store

import (
	sq "github.com/Masterminds/squirrel"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// searchPattern wraps a keyword in wildcards for substring matching.
func searchPattern(keyword string) string {
	return "%" + keyword + "%"
}
