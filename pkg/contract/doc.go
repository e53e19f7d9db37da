// Package contract derives the joke form definition from an OpenAPI document.
//
// The default document is embedded and describes the generation endpoint; its
// request schema supplies the tone options and defaults that the terminal
// front-end offers. Callers can point at a different document on disk or over
// HTTP. The form definition never drives validation of submitted values.
package contract
