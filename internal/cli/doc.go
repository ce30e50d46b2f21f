// Package cli maps the decisiongrid command tree onto app.Config and turns
// run outcomes into process exit codes: 0 on success, 1 when a request
// failed, 2 for usage and configuration errors.
package cli
