// Package prompt renders the single instruction block sent to the completion
// provider for a question about one document.
package prompt

import "strings"

// MaxDocumentChars bounds how much of a document is sent to the provider.
const MaxDocumentChars = 3000

const (
	instruction = "Based on this document, answer the question."
	answerCue   = "Answer:"
)

// Build truncates documentText to MaxDocumentChars characters and embeds it
// with question in the fixed template. Neither input is escaped.
func Build(documentText, question string) string {
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nDocument:\n")
	b.WriteString(Truncate(documentText, MaxDocumentChars))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(answerCue)
	return b.String()
}

// Truncate returns the first n characters of s, or s itself when it is not
// longer than that.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	seen := 0
	for i := range s {
		if seen == n {
			return s[:i]
		}
		seen++
	}
	return s
}
