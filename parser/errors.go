package parser

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Lexical and tree-construction error codes, named after the matching
// conditions in the HTML parsing specification. All of them are
// recoverable: the state machine has a defined continuation for each.
const (
	errAbruptClosingOfEmptyComment     = "abrupt-closing-of-empty-comment"
	errAbsenceOfDigits                 = "absence-of-digits-in-numeric-character-reference"
	errCharRefOutsideUnicodeRange      = "character-reference-outside-unicode-range"
	errControlCharRef                  = "control-character-reference"
	errDuplicateAttribute              = "duplicate-attribute"
	errEOFBeforeTagName                = "eof-before-tag-name"
	errEOFInComment                    = "eof-in-comment"
	errEOFInDoctype                    = "eof-in-doctype"
	errEOFInTag                        = "eof-in-tag"
	errEOFInTextContent                = "eof-in-element-that-can-contain-only-text"
	errEOFWithOpenElements             = "eof-with-unclosed-elements"
	errEndTagWithAttributes            = "end-tag-with-attributes"
	errEndTagWithTrailingSolidus       = "end-tag-with-trailing-solidus"
	errIncorrectlyClosedComment        = "incorrectly-closed-comment"
	errIncorrectlyOpenedComment        = "incorrectly-opened-comment"
	errInvalidCharacterAfterDoctype    = "invalid-character-sequence-after-doctype-name"
	errInvalidFirstCharacterOfTagName  = "invalid-first-character-of-tag-name"
	errMissingAttributeValue           = "missing-attribute-value"
	errMissingDoctypeName              = "missing-doctype-name"
	errMissingEndTagName               = "missing-end-tag-name"
	errMissingSemicolonAfterCharRef    = "missing-semicolon-after-character-reference"
	errMissingWhitespaceBeforeDoctype  = "missing-whitespace-before-doctype-name"
	errMissingWhitespaceBetweenAttrs   = "missing-whitespace-between-attributes"
	errNestedComment                   = "nested-comment"
	errNoncharacterCharRef             = "noncharacter-character-reference"
	errNullCharRef                     = "null-character-reference"
	errSurrogateCharRef                = "surrogate-character-reference"
	errTextBeforeRoot                  = "text-before-root-element"
	errUnexpectedCharInAttributeName   = "unexpected-character-in-attribute-name"
	errUnexpectedCharInUnquotedValue   = "unexpected-character-in-unquoted-attribute-value"
	errUnexpectedContentAfterRoot      = "unexpected-content-after-root"
	errUnexpectedDoctype               = "unexpected-doctype"
	errUnexpectedEndTag                = "unexpected-end-tag"
	errUnexpectedEqualsSign            = "unexpected-equals-sign-before-attribute-name"
	errUnexpectedNull                  = "unexpected-null-character"
	errUnexpectedQuestionMark          = "unexpected-question-mark-instead-of-tag-name"
	errUnexpectedSolidusInTag          = "unexpected-solidus-in-tag"
	errUnexpectedStartTag              = "unexpected-start-tag"
	errUnknownDoctypeName              = "unknown-doctype-name"
	errUnknownNamedCharRef             = "unknown-named-character-reference"
)

// LexError is a recoverable parse error: the tokenizer or tree builder
// reports it and continues with a best-effort interpretation unless the
// handler escalates.
type LexError struct {
	Code   string // one of the err* codes above
	Offset int    // rune offset into the input
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
}

// ErrorHandler receives every recoverable parse error. Returning nil
// continues the parse; returning a non-nil error aborts it with that
// error.
type ErrorHandler func(*LexError) error

// DefaultErrorHandler logs the error at debug level and continues.
func DefaultErrorHandler(e *LexError) error {
	logrus.WithField("offset", e.Offset).Debug(e.Code)
	return nil
}

// Structural errors. No well-defined tree state exists to continue
// from, so these abort the parse regardless of the error handler.
var (
	// ErrNoRootElement means input ended before any element opened.
	ErrNoRootElement = errors.New("no root element was opened")
	// ErrStrayEndTag means an end tag arrived before any start tag.
	ErrStrayEndTag = errors.New("end tag before any element was opened")
)

// MismatchError is the terminal error produced when the recovery
// policy decides a mismatched end tag should abort the parse.
type MismatchError struct {
	Expected string // name of the element still open
	Actual   string // name carried by the end tag
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatched end tag: expected </%s>, got </%s>", e.Expected, e.Actual)
}
