package services

import (
	"regexp"
	"unicode"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// ResolvePattern derives the effective regex expression and case policy
// from the raw request. Literal mode escapes every regex metacharacter;
// whole-word mode wraps the (possibly escaped) pattern in word boundaries.
//
// Case precedence, highest first: an explicit case-sensitive override, then
// explicit ignore-case, then smart-case (insensitive only when the raw,
// unescaped pattern contains no uppercase letter), then the sensitive
// default.
func ResolvePattern(req domain.SearchRequest) (expr string, insensitive bool) {
	expr = req.Pattern
	if req.Literal {
		expr = regexp.QuoteMeta(expr)
	}
	if req.WholeWord {
		expr = `\b` + expr + `\b`
	}

	switch req.Case {
	case domain.CaseSensitive:
		insensitive = false
	case domain.CaseInsensitive:
		insensitive = true
	case domain.CaseSmart:
		insensitive = !hasUpper(req.Pattern)
	}
	return expr, insensitive
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
