package jsonschema

import "github.com/kaptinlin/go-i18n"

// EvaluationError describes one violated keyword.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// NewEvaluationError creates an evaluation error with the given details.
func NewEvaluationError(keyword, code, message string, params ...map[string]any) *EvaluationError {
	e := &EvaluationError{Keyword: keyword, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize renders the error with a locale bundle, falling back to
// the English template when localizer is nil.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// EvaluationResult is the tree of pass/fail outcomes produced by
// Validate: one node per schema evaluated, with child nodes for every
// sub-schema (allOf/anyOf/oneOf/not/items/properties/...) that was
// evaluated along the way.
type EvaluationResult struct {
	schema           *Schema
	Valid            bool                        `json:"valid"`
	EvaluationPath   string                      `json:"evaluationPath"`
	InstanceLocation string                      `json:"instanceLocation"`
	Annotations      map[string]any              `json:"annotations,omitempty"`
	Errors           map[string]*EvaluationError `json:"errors,omitempty"`
	Details          []*EvaluationResult         `json:"details,omitempty"`
}

// NewEvaluationResult starts a passing result for schema.
func NewEvaluationResult(schema *Schema) *EvaluationResult {
	e := &EvaluationResult{schema: schema, Valid: true}
	e.collectAnnotations()
	return e
}

func (e *EvaluationResult) collectAnnotations() {
	if schema := e.schema; schema != nil {
		if schema.Title != "" {
			e.addAnnotation("title", schema.Title)
		}
		if schema.Description != "" {
			e.addAnnotation("description", schema.Description)
		}
		if schema.Default != nil {
			e.addAnnotation("default", schema.Default)
		}
	}
}

func (e *EvaluationResult) addAnnotation(key string, value any) {
	if e.Annotations == nil {
		e.Annotations = make(map[string]any)
	}
	e.Annotations[key] = value
}

// SetEvaluationPath records where in the schema this result was produced.
func (e *EvaluationResult) SetEvaluationPath(path string) *EvaluationResult {
	e.EvaluationPath = path
	return e
}

// SetInstanceLocation records the JSON Pointer to the evaluated
// instance. The keyword evaluators set it to a single token ("/name",
// "/0") relative to the parent result's instance, not a full path from
// the document root.
func (e *EvaluationResult) SetInstanceLocation(location string) *EvaluationResult {
	e.InstanceLocation = location
	return e
}

func (e *EvaluationResult) Error() string { return "evaluation failed" }

// IsValid reports whether this result, not counting its children,
// recorded no errors.
func (e *EvaluationResult) IsValid() bool { return e.Valid }

// AddError attaches a keyword failure and marks the result invalid.
func (e *EvaluationResult) AddError(err *EvaluationError) *EvaluationResult {
	if err == nil {
		return e
	}
	if e.Errors == nil {
		e.Errors = make(map[string]*EvaluationError)
	}
	e.Valid = false
	e.Errors[err.Keyword] = err
	return e
}

// AddDetail appends a child result (e.g. one allOf branch).
func (e *EvaluationResult) AddDetail(detail *EvaluationResult) *EvaluationResult {
	if detail == nil {
		return e
	}
	e.Details = append(e.Details, detail)
	return e
}

// List is a flattened, JSON-friendly rendering of an EvaluationResult.
type List struct {
	Valid            bool              `json:"valid"`
	EvaluationPath   string            `json:"evaluationPath"`
	InstanceLocation string            `json:"instanceLocation"`
	Annotations      map[string]any    `json:"annotations,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []List            `json:"details,omitempty"`
}

// ToList renders the result tree, localized if localizer is non-nil.
func (e *EvaluationResult) ToList(localizer *i18n.Localizer) *List {
	list := &List{
		Valid:            e.Valid,
		EvaluationPath:   e.EvaluationPath,
		InstanceLocation: e.InstanceLocation,
		Annotations:      e.Annotations,
		Errors:           e.convertErrors(localizer),
	}
	for _, detail := range e.Details {
		list.Details = append(list.Details, *detail.ToList(localizer))
	}
	return list
}

func (e *EvaluationResult) convertErrors(localizer *i18n.Localizer) map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for key, err := range e.Errors {
		out[key] = err.Localize(localizer)
	}
	return out
}

// AllErrors flattens every error in the result tree into a single
// slice: each node's own errors (in no defined order among themselves,
// since they are kept in a map) followed by those of its details in
// detail order. It is grounded on the original C validator's
// utils/json-validate.c which prints one line per violated
// constraint rather than stopping at the first.
func (e *EvaluationResult) AllErrors() []*EvaluationError {
	var out []*EvaluationError
	e.collectErrors(&out)
	return out
}

func (e *EvaluationResult) collectErrors(out *[]*EvaluationError) {
	for _, err := range e.Errors {
		*out = append(*out, err)
	}
	for _, detail := range e.Details {
		detail.collectErrors(out)
	}
}

// FirstError returns the deepest failing constraint, matching spec's
// default "stops at the first failure" contract: walk into the first
// invalid detail, recursively, and report the error found there
// rather than this node's own (often more generic) error.
func (e *EvaluationResult) FirstError() *EvaluationError {
	if e.Valid {
		return nil
	}
	for _, detail := range e.Details {
		if !detail.Valid {
			if deeper := detail.FirstError(); deeper != nil {
				return deeper
			}
		}
	}
	for _, err := range e.Errors {
		return err
	}
	return nil
}
