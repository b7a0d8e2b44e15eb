// Package application provides application initialization and dependency wiring.
// It connects the configuration, logger and calculator to an output writer so
// the main package stays focused on CLI parsing.
package application
