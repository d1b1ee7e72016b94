package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"viewgen/internal/common"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// View identifies which view declaration this relates to (if any).
	View string
	// FieldPath identifies which view field this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, view, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		View:      view,
		FieldPath: fieldPath,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, view, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		View:      view,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	msgs := make([]string, 0, len(d.Errors))
	for _, diag := range d.Errors {
		msgs = append(msgs, diag.String())
	}

	return errors.New(strings.Join(msgs, "; "))
}

// String returns a single-line rendering of the diagnostic.
func (diag Diagnostic) String() string {
	var sb strings.Builder

	sb.WriteString(diag.Severity.String())
	sb.WriteString("[")
	sb.WriteString(diag.Code)
	sb.WriteString("]")

	if diag.View != "" {
		fmt.Fprintf(&sb, " view %s", diag.View)
	}

	if diag.FieldPath != "" {
		fmt.Fprintf(&sb, " field %s", diag.FieldPath)
	}

	sb.WriteString(": ")
	sb.WriteString(diag.Message)

	return sb.String()
}
