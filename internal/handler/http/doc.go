// Package http implements the HTTP transport layer of the Finbank API.
//
// It wires the chi router, the request handlers and the middlewares used by
// the REST API. Request tracing, access logging and cookie based
// authentication happen here before requests reach the service layer.
// Every error leaves the package as a JSON body of the form
// {"status": "error", "message": ..., "action": ...}.
package http
