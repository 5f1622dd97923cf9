// Package jwt implements the minimal subset of RFC 7519 the Setups API
// needs: RS256-signed tokens carrying registered claims plus a user_id claim.
//
// The API itself never issues tokens during request handling; it only
// verifies them. Issuance belongs to the identity provider (or the devtoken
// tool during local development), which is why signing and validation are
// split: a Service constructed with only a public key can validate but not
// sign.
package jwt
