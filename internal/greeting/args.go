package greeting

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
)

const (
	nameFlag   = "name"
	nameToken  = "--" + nameFlag
	terminator = "--"
)

// negativeNumber matches tokens such as -5 or -.5 that read as values, not flags.
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// Tokenize splits raw on runs of whitespace. An empty or blank string yields no tokens.
func Tokenize(raw string) []string {
	return strings.Fields(raw)
}

// ParseName scans tokens for --name and returns its value. Tokens it does not
// recognize are skipped, since the argument string is shared with other
// consumers. A repeated --name keeps the last value; parsing stops at "--".
func ParseName(tokens []string) (string, error) {
	tokens, err := prepareTokens(tokens)
	if err != nil {
		return "", err
	}

	var name string

	fs := pflag.NewFlagSet("env_setup", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}

	fs.StringVar(&name, nameFlag, "", "A name to greet")
	// pflag answers -h/--help with ErrHelp before consulting the unknown-flag
	// allowlist, so claim them here and drop the value.
	fs.BoolP("help", "h", false, "")

	if err := fs.Parse(tokens); err != nil {
		return "", fmt.Errorf("parse arguments: %w", err)
	}
	return name, nil
}

// prepareTokens drops tokens pflag rejects as bad syntax instead of treating
// them as unknown (---x, --=x), and fails with ErrFlagAsValue when a bare
// --name is followed by a flag rather than a value. Tokens after "--" pass
// through untouched.
func prepareTokens(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if tok == terminator {
			return append(out, tokens[i:]...), nil
		}
		if malformedFlag(tok) {
			continue
		}
		if tok == nameToken && i+1 < len(tokens) && looksLikeFlag(tokens[i+1]) {
			return nil, fmt.Errorf("%s %s: %w", nameToken, tokens[i+1], ErrFlagAsValue)
		}
		out = append(out, tok)
	}
	return out, nil
}

func malformedFlag(tok string) bool {
	return strings.HasPrefix(tok, "---") || strings.HasPrefix(tok, "--=")
}

func looksLikeFlag(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-") && !negativeNumber.MatchString(tok)
}
