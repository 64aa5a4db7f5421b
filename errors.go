package dialect

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// DictionaryError indicates a word table that could not be loaded or parsed.
type DictionaryError struct {
	Table   string // Table name ("spelling", "honorifics", ...) or file path
	Message string
	Cause   error
}

func (e *DictionaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary error (%s): %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary error (%s): %s", e.Table, e.Message)
}

func (e *DictionaryError) Unwrap() error {
	return e.Cause
}

// DirectionError indicates a direction or locale name that maps to neither
// American nor British English.
type DirectionError struct {
	Value string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("unknown translation direction %q", e.Value)
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates a content processing failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}
