package recipe

import (
	"regexp"
	"strings"
)

// unknownExpr replaces template expressions that cannot be evaluated.
const unknownExpr = "jinja_expr"

var (
	// One alternative per template construct: statement, expression, comment.
	templateTagRe = regexp.MustCompile(`(?s)\{%-?(.*?)-?%\}|\{\{-?(.*?)-?\}\}|\{#.*?#\}`)

	setStmtRe   = regexp.MustCompile(`(?s)^\s*set\s+([A-Za-z_]\w*)\s*=\s*(.*?)\s*$`)
	callRe      = regexp.MustCompile(`(?s)^([A-Za-z_][\w.]*)\s*\((.*)\)$`)
	identRe     = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	stringLitRe = regexp.MustCompile(`^(?:"([^"]*)"|'([^']*)')$`)
)

// Render evaluates the template layer of a recipe into plain YAML text.
//
// Variables set with {% set %} are visible to later expressions. Other
// statements and comments render to nothing. Line structure is preserved.
func Render(text string) string {
	vars := make(map[string]string)

	var out strings.Builder

	last := 0

	for _, loc := range templateTagRe.FindAllStringSubmatchIndex(text, -1) {
		out.WriteString(text[last:loc[0]])
		last = loc[1]

		switch {
		case loc[2] >= 0:
			// {% ... %}: only set statements have an effect.
			stmt := text[loc[2]:loc[3]]
			if m := setStmtRe.FindStringSubmatch(stmt); m != nil {
				vars[m[1]] = evalExpr(m[2], vars)
			}

			out.WriteString(strings.Repeat("\n", strings.Count(text[loc[0]:loc[1]], "\n")))

		case loc[4] >= 0:
			out.WriteString(evalExpr(text[loc[4]:loc[5]], vars))

		default:
			out.WriteString(strings.Repeat("\n", strings.Count(text[loc[0]:loc[1]], "\n")))
		}
	}

	out.WriteString(text[last:])

	return out.String()
}

// evalExpr evaluates the small expression language recipes actually use:
// string literals, variables, function calls, ~ concatenation and the
// lower/upper filters.
func evalExpr(expr string, vars map[string]string) string {
	expr = strings.TrimSpace(expr)

	filters := strings.Split(expr, "|")
	base := strings.TrimSpace(filters[0])

	var value string

	if parts := splitTopLevel(base, '~'); len(parts) > 1 {
		var b strings.Builder
		for _, p := range parts {
			b.WriteString(evalExpr(p, vars))
		}

		value = b.String()
	} else {
		value = evalTerm(base, vars)
	}

	for _, f := range filters[1:] {
		switch strings.TrimSpace(f) {
		case "lower":
			value = strings.ToLower(value)
		case "upper":
			value = strings.ToUpper(value)
		}
	}

	return value
}

func evalTerm(term string, vars map[string]string) string {
	if m := stringLitRe.FindStringSubmatch(term); m != nil {
		return m[1] + m[2]
	}

	if identRe.MatchString(term) {
		if v, ok := vars[term]; ok {
			return v
		}

		return term
	}

	if m := callRe.FindStringSubmatch(term); m != nil {
		arg := ""
		if first := splitTopLevel(m[2], ',')[0]; first != "" {
			arg = evalExpr(first, vars)
		}

		switch m[1] {
		case "compiler":
			return arg + "_compiler_stub"
		case "stdlib":
			return arg + "_stdlib_stub"
		}

		if arg != "" {
			return arg
		}

		return m[1]
	}

	return unknownExpr
}

// splitTopLevel splits an expression on sep outside string literals and
// parentheses.
func splitTopLevel(expr string, sep rune) []string {
	var (
		parts []string
		quote rune
		depth int
		start int
	)

	for i, r := range expr {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(expr[start:i]))
			start = i + 1
		}
	}

	return append(parts, strings.TrimSpace(expr[start:]))
}
