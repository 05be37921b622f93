package naming

import (
	"strings"
	"unicode"
)

// Fold normalizes an identifier for case- and separator-insensitive lookup.
// "Text-Box", "text_box", and "TextBox" all fold to "textbox".
func Fold(s string) string {
	tokens := Tokenize(s)

	return strings.ToLower(strings.Join(tokens, ""))
}

// Pascal converts any identifier style to PascalCase.
// "submit-button" -> "SubmitButton", "userName" -> "UserName",
// "XMLHttp" -> "XmlHttp".
func Pascal(s string) string {
	tokens := Tokenize(s)

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(capitalize(tok))
	}

	return b.String()
}

// Camel converts any identifier style to camelCase.
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return ""
	}

	runes := []rune(p)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

// SafeIdent returns s as a valid C# identifier in PascalCase, or fallback
// when nothing usable remains.
func SafeIdent(s, fallback string) string {
	var cleaned strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == ' ' {
			cleaned.WriteRune(r)
		}
	}

	p := Pascal(cleaned.String())
	if p == "" {
		return fallback
	}

	if unicode.IsDigit([]rune(p)[0]) {
		return fallback + p
	}

	return p
}

// capitalize uppercases the first rune and lowercases the rest, so acronym
// tokens come out in C# casing ("XML" -> "Xml").
func capitalize(tok string) string {
	if tok == "" {
		return ""
	}

	runes := []rune(strings.ToLower(tok))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// Tokenize splits an identifier into words on separators and CamelCase
// boundaries.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "submit-button" -> ["submit", "button"]
//   - "XMLParser" -> ["XML", "Parser"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Separators end the current token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if startsNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsNewToken reports whether a new token begins at position i.
func startsNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)
	isPrevSep := isSeparator(prev)

	// lower -> Upper transition, e.g. "orderID" splits before 'I'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of an acronym run, e.g. "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	// digit -> letter boundary, e.g. "map3d" keeps "3d" attached
	return false
}
