package csvtextab

import "strings"

// latexReplacements maps every character with special meaning in LaTeX text
// mode to its escaped form. The set matches the characters LaTeX reserves
// plus the angle brackets, which render wrong in the default text encoding.
var latexReplacements = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\^{}`,
	'\\': `\textbackslash{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
}

// Escape returns s with every LaTeX reserved character replaced by its
// escaped form. The input is scanned left to right exactly once, so
// backslashes introduced by a replacement are never escaped again.
func Escape(s string) string {
	i := strings.IndexAny(s, `&%$#_{}~^\<>`)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if repl, ok := latexReplacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
