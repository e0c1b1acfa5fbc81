// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services, and the background
// history refresh into a single process lifecycle.
package client
