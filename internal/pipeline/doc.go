// Package pipeline turns a validated pipeline document into a single
// composed transform. Resolution of the namespace and of every step
// happens once, at build time; the returned Pipeline replays the
// captured sequence on each application.
package pipeline
