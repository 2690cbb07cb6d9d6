// Package platform isolates the OS-specific behavior the rest of the code
// should not care about, currently permission handling on Windows.
package platform
