// Package gateway defines the contract with the remote session service: the
// descriptor types exchanged with it and the Gateway interface the SDK facade
// delegates session and archive lifecycle operations to.
//
// The SDK core never performs network I/O itself. Implementations of Gateway
// (see integration/api for the HTTP one) issue the actual requests and map
// remote failures onto this package's error taxonomy, so callers can always
// distinguish a remote request failure from a local validation error.
//
// All Gateway methods accept a context and return when the remote call
// completes or the context is done. Implementations must be safe for
// concurrent use; multiple in-flight calls proceed independently with no
// ordering guarantee between them.
package gateway
