package csvtextab

import "strings"

const (
	documentPreamble = "\\documentclass{article}\\begin{document}\n"
	documentEpilogue = "\\end{document}\n"
)

// wrapDocument surrounds the tabular body with the configured pre/post text
// and, when Standalone is set, a minimal compilable LaTeX document shell.
// The user's pretext sits inside the shell, directly before the table.
func wrapDocument(body string, cfg Config) string {
	pre := cfg.PreText
	post := cfg.PostText
	if cfg.Standalone {
		pre = documentPreamble + pre
		post = post + documentEpilogue
	}
	var b strings.Builder
	if pre != "" {
		b.WriteString(pre)
		b.WriteString("\n")
	}
	b.WriteString(body)
	b.WriteString(post)
	return b.String()
}
