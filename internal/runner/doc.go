// Package runner executes external command lines and classifies their
// outcome. Every uv invocation made by mspyl goes through a single Runner,
// which captures output, applies a bounded deadline, and turns the two
// expected failure modes (missing executable, non-zero exit) into typed
// errors callers can branch on with errors.As.
package runner
