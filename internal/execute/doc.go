// Package execute runs a user-supplied command once per fuzip record.
//
// A Template is an argv whose arguments may contain 1-based positional
// placeholders ({1} for the left element, {2} for the right one). How a
// placeholder that points at an absent side is handled is the caller's
// choice through MissingPolicy: fail, skip the record, or substitute an
// empty string. Runner forks the rendered commands, honouring dry-run and
// stop-on-failure, and Lock keeps concurrent exec runs from interleaving.
package execute
