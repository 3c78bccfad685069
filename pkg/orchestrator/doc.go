// Package orchestrator wires the manifest loader, request resolution and a
// renderer into one Generate call. It is what cmd/intfmt-gen runs during go
// generate; any error it returns fails the build.
package orchestrator
