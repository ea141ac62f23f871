package parser

import "github.com/sirupsen/logrus"

// Action is a recovery policy's verdict on a mismatched end tag.
type Action uint8

const (
	// ActionIgnore drops the end tag and leaves the tree untouched.
	ActionIgnore Action = iota
	// ActionAbort stops the parse with a MismatchError.
	ActionAbort
	// ActionClose pops open elements until the end tag's target, if an
	// enclosing element carries its name; otherwise the tag is dropped.
	ActionClose
)

// Mismatch describes an end tag whose name is not the innermost open
// element.
type Mismatch struct {
	// Open is the name of the innermost open element.
	Open string
	// Closing is the name carried by the end tag.
	Closing string
	// Ancestors lists the names of the remaining open elements,
	// nearest first, ending at the root.
	Ancestors []string
}

// RecoveryPolicy decides what the tree builder does when an end tag
// does not match the innermost open element. Implementations must be
// stateless with respect to the tree; they see only the Mismatch.
type RecoveryPolicy interface {
	Resolve(m Mismatch) Action
}

// ErrorPolicy aborts on any mismatch. It turns the parser into a
// strict well-formedness checker.
type ErrorPolicy struct{}

func (ErrorPolicy) Resolve(Mismatch) Action { return ActionAbort }

// VoidPolicy ignores mismatched end tags, logging each one. Content
// after the dropped tag stays inside the element left open.
type VoidPolicy struct{}

func (VoidPolicy) Resolve(m Mismatch) Action {
	logrus.WithFields(logrus.Fields{
		"open":    m.Open,
		"closing": m.Closing,
	}).Warn("ignoring mismatched end tag")
	return ActionIgnore
}

// ClosePolicy closes intervening elements when the end tag names an
// enclosing ancestor, and ignores the tag when it names nothing open.
type ClosePolicy struct{}

func (ClosePolicy) Resolve(m Mismatch) Action {
	for _, name := range m.Ancestors {
		if name == m.Closing {
			return ActionClose
		}
	}
	return ActionIgnore
}
