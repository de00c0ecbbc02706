// Package errors defines the vx error taxonomy and process exit codes.
//
// Errors fall into four classes: configuration errors, guardrail
// rejections, managed-list I/O failures, and external-tool failures.
// Guardrail and configuration errors are always reported before any
// external process runs. A tool's own non-zero exit status is not an
// internal error; it is wrapped with ToolExit and forwarded verbatim
// as the vx process exit code.
package errors
