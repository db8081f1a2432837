package structlog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

const maxErrorChain = 50

// errorLink is one error in a cause chain. op is set for Station-Manager
// DetailedError links only.
type errorLink struct {
	message string
	op      string
}

// errorChain lists an error and its causes, outermost first.
type errorChain []errorLink

// newErrorChain follows DetailedError.Cause, then errors.Unwrap. For
// joined errors only the first branch is followed. A plain error repeating
// an earlier message ends the chain.
func newErrorChain(err error) errorChain {
	var chain errorChain
	seen := make(map[string]struct{})
	for err != nil && len(chain) < maxErrorChain {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, errorLink{message: dErr.Error(), op: string(dErr.Op())})
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if _, dup := seen[msg]; dup {
			break
		}
		seen[msg] = struct{}{}
		chain = append(chain, errorLink{message: msg})
		err = unwrapFirst(err)
	}
	return chain
}

func unwrapFirst(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
		return nil
	}
	return stderrs.Unwrap(err)
}

func (c errorChain) messages() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = l.message
	}
	return out
}

func (c errorChain) ops() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = l.op
	}
	return out
}

// root is the innermost link; zero for an empty chain.
func (c errorChain) root() errorLink {
	if len(c) == 0 {
		return errorLink{}
	}
	return c[len(c)-1]
}

// String joins the messages with " -> ".
func (c errorChain) String() string {
	return strings.Join(c.messages(), " -> ")
}
