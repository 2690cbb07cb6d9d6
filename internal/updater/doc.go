// Package updater checks GitHub releases for newer versions of the binary
// and prints a non-blocking startup banner. Results are cached for a day in
// the config directory so no invocation ever waits on the network.
package updater
