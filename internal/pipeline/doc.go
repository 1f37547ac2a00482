// Package pipeline streams batch request files through a Converter on a
// pool of workers and calls a visit callback for every line, in input order.
//
// Failed lines are not errors of the pipeline: they are delivered as Items
// with Err set. Only I/O failures, cancellation and visit errors stop it.
package pipeline
