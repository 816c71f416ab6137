// Package apiclient is a typed Go client for the bucketlist service.
//
// The zero-dependency request/response types double as the server's wire
// contract: handlers encode these exact structs, so the client and server
// cannot drift apart silently. The API tests drive a real server through
// this package.
package apiclient
