package tools

import "fmt"

// TextResult creates a successful text result.
func TextResult(text string) *Result {
	return &Result{Status: ResultSuccess, Text: text}
}

// ErrorResult creates an error result. The message is returned to the caller
// as text, never thrown.
func ErrorResult(toolName, message string) *Result {
	return &Result{
		Status: ResultError,
		Text:   fmt.Sprintf("Error in %s: %s", toolName, message),
		Error:  fmt.Sprintf("Error in %s: %s", toolName, message),
	}
}

// ErrorResultf creates an error result with a formatted message.
func ErrorResultf(toolName, format string, args ...any) *Result {
	return ErrorResult(toolName, fmt.Sprintf(format, args...))
}
