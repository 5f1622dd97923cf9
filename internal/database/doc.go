// Package database provides the document-store abstraction for the Setups API.
//
// The Database interface hides the SurrealDB driver behind three query
// methods:
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by record id)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// Standard errors are defined for common failure cases and should be checked
// with errors.Is:
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrConnection: connection or communication failure
//   - ErrQuery: query execution failure
//
// Concurrent writes to the same record are not coordinated here; the last
// write wins, which is the documented behavior of the API.
package database
