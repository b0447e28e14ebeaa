// Package reqfreq counts the kinds of request in an access log. A kind of
// request is the combination of HTTP method, endpoint and status code, where
// the endpoint has any trailing numeric ID replaced by '#', so that
// "get /users/123 200" and "get /users/456 200" are the same kind.
//
// Log lines have six space-separated fields:
//
//	[1234 5678] get /users/123 200 cli1
//
// The first two are timestamps and the last identifies the client; all three
// are ignored.
//
// Most operations work on a Pipe, so that they can be chained:
//
//	reqfreq.File("access.log").Report().First(10).Stdout()
//
// If any pipe operation results in an error, the pipe's Error() method will
// return that error, and all later pipe operations will be no-ops. Thus you
// can safely chain a whole series of operations without having to check the
// error status at each stage.
//
// The parsing and counting steps are also available on their own: Tokenize,
// NormalizeEndpoint, NewRecord, Aggregate and Rank.
package reqfreq
