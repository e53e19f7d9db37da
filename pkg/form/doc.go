// Package form implements the joke form controller. The controller reads the
// topic and tone from a View, submits them through a joke.Generator, and
// writes the outcome back into the View's display regions.
//
// The View replaces element lookups on a page with an explicit capability set
// so terminal front-ends, batch runners, and tests can all drive the same
// controller.
package form
