// Package tabular reads and writes the spreadsheet artifacts the bot works
// with: the roster (CSV or XLSX) and the user log (XLSX).
//
// Files are read into a [Table], a header row plus string cells. Writing
// produces a single-sheet XLSX workbook; [WriteFile] replaces the target
// atomically so a crash never leaves a half-written user log behind.
package tabular
