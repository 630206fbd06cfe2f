// Package updater checks GitHub Releases for a newer mspyl version. A
// daily-cached check powers the startup banner; installation of the new
// binary is left to the user's package manager.
package updater
