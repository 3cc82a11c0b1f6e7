// Package tools defines the MCP tool surface of the Naver search server: one
// tool per search category plus the adult-query and errata helpers.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool definition with its execution logic.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema, Annotations
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result standardizes tool output. Per-call failures are carried as error
// results rather than transport faults so the calling agent can read and act
// on them.
type Result struct {
	Status ResultStatus
	Text   string
	Error  string
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultError   ResultStatus = "error"
)

// IsError reports whether the result carries an error.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}

// Message returns the text to surface to the caller.
func (r *Result) Message() string {
	if r.IsError() && r.Error != "" {
		return r.Error
	}
	return r.Text
}
