// Package testsupport holds fixtures shared by package tests: input
// directories, an isolated HOME, and config files.
package testsupport
