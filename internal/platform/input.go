package platform

import (
	"fmt"
	"regexp"
	"strings"
)

// unsafeArgPattern matches characters that force shell quoting for display.
var unsafeArgPattern = regexp.MustCompile(`[^\w@%+=:,./-]`)

// SplitQueries splits raw user input into individual queries on any run of
// whitespace, so URLs may be separated by spaces or newlines.
func SplitQueries(raw string) []string {
	return strings.Fields(raw)
}

// SplitArgString splits a command-line fragment into arguments, honoring
// single and double quotes so values containing spaces survive intact.
// A backslash outside quotes escapes the next character. An unterminated
// quote is an error.
func SplitArgString(raw string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false
	escaped := false

	for _, r := range raw {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote == 0:
			escaped = true
			inArg = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if escaped {
		current.WriteByte('\\')
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in arguments: %s", raw)
	}

	if inArg {
		args = append(args, current.String())
	}

	return args, nil
}

// QuoteArg returns the argument in shell-quoted form for display
func QuoteArg(arg string) string {
	if arg == "" {
		return "''"
	}

	if !unsafeArgPattern.MatchString(arg) {
		return arg
	}

	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}

// QuoteCommand renders a full argument list as one display string
func QuoteCommand(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, QuoteArg(arg))
	}
	return strings.Join(quoted, " ")
}
