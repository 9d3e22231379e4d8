package db

import _ "embed"

// Schema creates the fittrack tables. Statements are idempotent.
//
//go:embed schema.sql
var Schema string
