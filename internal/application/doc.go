// Package application wires configuration, logging and the greeting generator
// together and performs a single run, keeping the main package focused on CLI
// parsing.
package application
