// Package main hosts the fuzip CLI entrypoint and command graph.
//
// The root command lists two directories, pairs their files by edit
// distance and either prints the records or runs a command template for
// each one. Configuration resolution and logger setup are centralized in
// commandContext so commands only deal with their own flags.
package main
