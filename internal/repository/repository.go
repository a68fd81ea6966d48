package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqldb for the SQL engines).

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
