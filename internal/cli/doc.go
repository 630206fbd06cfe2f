// Package cli defines the Cobra command tree for the mspyl CLI. Each file
// in this package registers one top-level command (install, venv, build, etc.)
// with the root command. Command implementations delegate to internal packages
// for the uv orchestration and only handle flag parsing, I/O formatting, and
// user interaction.
package cli
