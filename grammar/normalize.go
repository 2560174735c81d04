package grammar

import (
	"regexp"
	"strings"
	"unicode"
)

var typeAliases = map[string]string{
	"int":      "int256",
	"uint":     "uint256",
	"fixed":    "fixed128x18",
	"ufixed":   "ufixed128x18",
	"function": "bytes24",
	"byte":     "bytes1",
}

var typeAliasRE = regexp.MustCompile(`\b(int|uint|fixed|ufixed|function|byte)\b`)

// Normalize returns the canonical spelling of typeStr: whitespace removed,
// lower-cased, aliases resolved. Normalize(Normalize(s)) == Normalize(s).
func Normalize(typeStr string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, typeStr)

	return typeAliasRE.ReplaceAllStringFunc(s, func(alias string) string {
		return typeAliases[alias]
	})
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(typeAliases))
	for k, v := range typeAliases {
		out[k] = v
	}
	return out
}
