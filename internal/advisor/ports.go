package advisor

import "context"

// Advisor answers a free-form planning question against a prepared
// financial context string.
type Advisor interface {
	Advise(ctx context.Context, financialContext, question string) (string, error)
}
