// Package launcher implements the steps shared by the bootstrap and ctest helpers:
// CI detection, the platform gate, command line quoting and running the child process.
package launcher
