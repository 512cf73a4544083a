package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Result is a decoded GraphQL response. Data and Errors may both be set when
// the service reports a partial success.
type Result struct {
	Data       map[string]any `json:"data,omitempty"`
	Errors     []*Error       `json:"errors,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error is one entry of the "errors" array. Fields are filled in as the
// decoder finds them, so any of them may be left at its zero value.
type Error struct {
	Message   string           `json:"message,omitempty"`
	Locations []SourceLocation `json:"locations,omitempty"`
	Path      []any            `json:"path,omitempty"`
	ErrorType string           `json:"errorType,omitempty"`
	ErrorInfo map[string]any   `json:"errorInfo,omitempty"`
	Data      any              `json:"data,omitempty"`
}

// SourceLocation points into the query document. Zero means unknown.
type SourceLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.ErrorType != "" {
		sb.WriteString(e.ErrorType)
		sb.WriteString(": ")
	}
	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString("unknown error")
	}
	if len(e.Path) > 0 {
		segs := make([]string, len(e.Path))
		for i, p := range e.Path {
			segs[i] = fmt.Sprint(p)
		}
		sb.WriteString(" (path: ")
		sb.WriteString(strings.Join(segs, "."))
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *Error) UnmarshalJSON(b []byte) error {
	type plain Error
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	for i, seg := range p.Path {
		// encoding/json hands back list indexes as float64
		if f, ok := seg.(float64); ok && f == math.Trunc(f) {
			p.Path[i] = int(f)
		}
	}
	*e = Error(p)
	return nil
}

func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// IsPartial reports whether the service returned data alongside errors.
func (r *Result) IsPartial() bool {
	return r.Data != nil && r.HasErrors()
}

// Err joins the reported errors into a single error, or returns nil when the
// response carried none.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}

// DecodeResult parses a GraphQL response body. Keys missing from the body
// are left nil on the Result.
//
// Example usage:
//
//	res, err := DecodeResult([]byte(`{"data": {"x": 1}}`))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Data["x"]) // 1
func DecodeResult(body []byte) (*Result, error) {
	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("Error Unmarshaling Response: %w", err)
	}
	return &res, nil
}

// DecodeData converts the untyped data payload into T.
//
// Example usage:
//
//	type putPost struct {
//		PutPost struct {
//			ID    string `json:"id"`
//			Title string `json:"title"`
//		} `json:"putPost"`
//	}
//	post, err := DecodeData[putPost](res)
func DecodeData[T any](r *Result) (T, error) {
	var out T
	if r == nil || r.Data == nil {
		return out, nil
	}
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return out, fmt.Errorf("Error Marshaling Data: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("Error Unmarshaling Data: %w", err)
	}
	return out, nil
}
