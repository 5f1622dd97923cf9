// Package repository implements data access for setups over the document
// store. Repositories translate between SurrealDB result shapes and domain
// models; they report absence as (nil, nil) rather than an error so that
// callers decide what a missing record means.
package repository
