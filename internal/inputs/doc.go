// Package inputs turns input directories into the element lists fuzip
// matches.
//
// List enumerates the regular files directly inside a directory (symlinks
// that resolve to regular files included; subdirectories, devices, sockets,
// fifos and dangling links excluded) and wraps each one in a Path whose key
// is derived from its file name according to KeyOptions.
package inputs
