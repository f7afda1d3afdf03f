package service

import (
	"strings"

	"github.com/MKhiriev/go-roster-bot/models"
)

// Accepted lengths of the two numeric query shapes.
const (
	minIdentifierLen = 5
	maxIdentifierLen = 9
	minCategoryLen   = 1
	maxCategoryLen   = 2
)

// Classify decides what a free-text message asks for. The text is trimmed
// first; only ASCII digits count. Five to nine digits name a record, one or
// two digits name a category, anything else is invalid.
func Classify(text string) models.Query {
	text = strings.TrimSpace(text)
	q := models.Query{Kind: models.QueryInvalid, Text: text}

	if !isASCIIDigits(text) {
		return q
	}

	switch n := len(text); {
	case n >= minIdentifierLen && n <= maxIdentifierLen:
		q.Kind = models.QueryIdentifier
	case n >= minCategoryLen && n <= maxCategoryLen:
		q.Kind = models.QueryCategory
	}

	return q
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
