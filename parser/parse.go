// Package parser parses HTML text into an arena-backed document tree.
// It runs a character-level tokenizer and an insertion-mode tree
// builder in lockstep. Nothing is synthesized: the first start tag in
// the input becomes the document root, and mismatched end tags are
// resolved by a pluggable recovery policy.
package parser

import (
	"github.com/pkg/errors"

	"grove/parser/dom"
)

type config struct {
	policy  RecoveryPolicy
	handler ErrorHandler
}

// Option configures a single Parse call.
type Option func(*config)

// WithRecoveryPolicy selects how mismatched end tags are resolved.
// The default is ErrorPolicy, which fails fast.
func WithRecoveryPolicy(p RecoveryPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithErrorHandler installs a handler for recoverable parse errors.
// The default logs them at debug level and continues.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) { c.handler = h }
}

// Parse consumes the whole input and returns the finished document.
// The returned document is immutable and safe for concurrent reads.
func Parse(input string, opts ...Option) (*dom.Document, error) {
	c := config{policy: ErrorPolicy{}, handler: DefaultErrorHandler}
	for _, opt := range opts {
		opt(&c)
	}
	z := newTokenizer(newCursor(input), c.handler)
	doc, err := newTreeBuilder(z, c.policy, c.handler).run()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return doc, nil
}
