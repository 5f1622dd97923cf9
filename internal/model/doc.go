// Package model defines the domain types of the Setups API: the Setup
// record, its request payloads, and the RFC 9457 problem-details error
// representation shared by every handler.
package model
