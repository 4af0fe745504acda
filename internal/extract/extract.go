// Package extract pulls ordered string arrays out of TypeScript source
// text by best-effort pattern matching. It deliberately does not parse
// the language; it recognizes the handful of declaration shapes the
// Defuddle sources actually use, and returns nothing for everything else.
package extract

import (
	"regexp"
	"strings"
)

// A form locates one declaration surface binding name to an array body.
// Forms are tried in order and the first structural match wins, even if
// its body later yields no literals.
type form func(name, text string) (body string, ok bool)

var exportedForms = []form{exportArrayForm, exportSetForm}

var (
	singleQuoted = regexp.MustCompile(`'([^']+)'`)
	doubleQuoted = regexp.MustCompile(`"([^"]+)"`)
	// A whole-line string literal, optionally with a trailing comma
	// and/or a trailing line comment.
	wholeLineLiteral = regexp.MustCompile(`^['"](.+?)['"],?\s*(?://.*)?$`)
)

// Exported extracts the string literals bound by an
// "export const NAME = [ ... ]" declaration (optionally suffixed with a
// .join(...) call) or, failing that, "export const NAME = new Set([ ... ])".
// An absent declaration or an unparseable body yields an empty slice,
// never an error.
func Exported(name, text string) []string {
	for _, match := range exportedForms {
		if body, ok := match(name, text); ok {
			return arrayLiterals(body)
		}
	}
	return []string{}
}

// Plain extracts the string literals bound by a bare
// "const NAME = [ ... ];" declaration, as found in scoring.ts. Only the
// line-by-line body format is recognized here.
func Plain(name, text string) []string {
	if body, ok := plainArrayForm(name, text); ok {
		return lineLiterals(body)
	}
	return []string{}
}

func exportArrayForm(name, text string) (string, bool) {
	re := regexp.MustCompile(
		`(?s)export const ` + regexp.QuoteMeta(name) + `\s*=\s*\[(.*?)\](?:\.join\(['"],?['"]\))?;`)
	return firstSubmatch(re, text)
}

func exportSetForm(name, text string) (string, bool) {
	re := regexp.MustCompile(
		`(?s)export const ` + regexp.QuoteMeta(name) + `\s*=\s*new Set\(\[(.*?)\]\)`)
	return firstSubmatch(re, text)
}

func plainArrayForm(name, text string) (string, bool) {
	re := regexp.MustCompile(
		`(?s)const ` + regexp.QuoteMeta(name) + `\s*=\s*\[(.*?)\];`)
	return firstSubmatch(re, text)
}

func firstSubmatch(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// arrayLiterals picks the body format. A body with no line breaks is
// comma-separated on one line; so is a body with more than four single
// quotes, which catches values jammed onto one line even when the body
// superficially spans lines. The threshold is tuned to the Defuddle
// sources and is deliberately left alone, fragile as it is.
func arrayLiterals(body string) []string {
	if !strings.Contains(strings.TrimSpace(body), "\n") || strings.Count(body, "'") > 4 {
		return quotedLiterals(body)
	}
	return lineLiterals(body)
}

// quotedLiterals extracts all single-quoted literals in order, falling
// back to double-quoted literals when there are none.
func quotedLiterals(body string) []string {
	items := captureAll(singleQuoted, body)
	if len(items) == 0 {
		items = captureAll(doubleQuoted, body)
	}
	return items
}

// lineLiterals scans the body line by line, skipping blanks and //
// comments, and keeps lines that are entirely one quoted literal. The
// captured text between the outer quotes is taken verbatim; no escape
// processing is done.
func lineLiterals(body string) []string {
	items := []string{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if m := wholeLineLiteral.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
		}
	}
	return items
}

func captureAll(re *regexp.Regexp, s string) []string {
	items := []string{}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		items = append(items, m[1])
	}
	return items
}
