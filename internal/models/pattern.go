package models

import (
	"sort"
	"strings"
)

// TransactionPattern is a set of lower-cased word tokens extracted from a
// transaction's merchant name and description. It is the lookup key for
// learned category mappings. No stemming or synonym expansion is performed;
// this is a deliberately cheap approximation.
type TransactionPattern struct {
	tokens map[string]struct{}
}

// NewTransactionPattern builds a pattern from the given tokens.
// Tokens are lower-cased; blank tokens are dropped.
func NewTransactionPattern(tokens ...string) TransactionPattern {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return TransactionPattern{tokens: set}
}

// ExtractPattern derives the pattern for a transaction from its merchant
// name and description.
func ExtractPattern(tx BankTransaction) TransactionPattern {
	words := strings.Fields(strings.ToLower(tx.Merchant))
	words = append(words, strings.Fields(strings.ToLower(tx.Description))...)
	return NewTransactionPattern(words...)
}

// Tokens returns the pattern's tokens in sorted order
func (p TransactionPattern) Tokens() []string {
	tokens := make([]string, 0, len(p.tokens))
	for token := range p.tokens {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Contains returns true if the pattern holds the given token
func (p TransactionPattern) Contains(token string) bool {
	_, ok := p.tokens[strings.ToLower(token)]
	return ok
}

// IsEmpty returns true if the pattern holds no tokens
func (p TransactionPattern) IsEmpty() bool {
	return len(p.tokens) == 0
}

// Size returns the number of distinct tokens in the pattern
func (p TransactionPattern) Size() int {
	return len(p.tokens)
}

// Matches reports whether two patterns share at least one token.
// This is the "exact match" notion used for mapping lookup: a
// superset-tolerant intersection check, not set equality.
func (p TransactionPattern) Matches(other TransactionPattern) bool {
	small, large := p.tokens, other.tokens
	if len(large) < len(small) {
		small, large = large, small
	}
	for token := range small {
		if _, ok := large[token]; ok {
			return true
		}
	}
	return false
}
