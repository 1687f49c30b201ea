// Package console implements the interactive menu loop. It reads choices
// from an injected reader, routes them through the report dispatch table,
// and prints the resulting statistics and artifact paths. Opening the plots
// folder goes through the FolderOpener collaborator so the behavior stays
// testable without a desktop environment.
package console
