package engine

import (
	"strings"
	"time"

	oerrors "github.com/logic-lang/logicopt/core/errors"
)

// Enforced input bounds. Nesting depth is checked during lexing and the
// iteration ceiling inside the rewriter; the rest live here.
const (
	MaxSourceLength = 10_000
	MaxVariables    = 100
	MaxWallClock    = 30 * time.Second
)

// ValidateSource enforces the pre-lexing limits on the raw source
func ValidateSource(source string) error {
	if len(source) > MaxSourceLength {
		return oerrors.LimitExceeded(oerrors.ErrExpressionTooLong,
			"expression too long", len(source), MaxSourceLength)
	}
	if strings.TrimSpace(source) == "" {
		return oerrors.New(oerrors.ErrEmptyExpression, "empty expression")
	}
	return nil
}

// ValidateVariables enforces the free-variable cap after parsing
func ValidateVariables(variables []string) error {
	if len(variables) > MaxVariables {
		return oerrors.LimitExceeded(oerrors.ErrTooManyVariables,
			"too many variables", len(variables), MaxVariables)
	}
	return nil
}
