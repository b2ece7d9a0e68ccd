// Package testdoubles provides spies for the observability interfaces of package library
// and a controllable clock for tests that depend on elapsed time.
package testdoubles
