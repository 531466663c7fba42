// Package memory provides a canned advisor for tests and offline runs.
package memory

import (
	"context"

	"geldplan/internal/advisor"
)

type Advisor struct {
	// Reply is returned verbatim; Err takes precedence when set.
	Reply string
	Err   error

	// Calls records every (context, question) pair for assertions.
	Calls [][2]string
}

var _ advisor.Advisor = (*Advisor)(nil)

func (a *Advisor) Advise(_ context.Context, financialContext, question string) (string, error) {
	a.Calls = append(a.Calls, [2]string{financialContext, question})
	if a.Err != nil {
		return "", a.Err
	}
	return a.Reply, nil
}
