package gemini

import (
	"regexp"
	"strings"
)

// Model responses are instructed to be plain text, but the model still leaks
// markdown. Everything user-facing or parsed downstream goes through CleanMarkdown.
var (
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reBoldUnder  = regexp.MustCompile(`__([^_]+)__`)
	reUnder      = regexp.MustCompile(`_([^_]+)_`)
	reHeading    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reCodeFence  = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$\\n?")
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reBulletItem = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	reNumberItem = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// CleanMarkdown strips presentation markup while keeping the text content.
// Link targets are dropped, link text is kept. Idempotent.
func CleanMarkdown(text string) string {
	if text == "" {
		return text
	}

	out := reCodeFence.ReplaceAllString(text, "")
	out = reBold.ReplaceAllString(out, "$1")
	out = reItalic.ReplaceAllString(out, "$1")
	out = reBoldUnder.ReplaceAllString(out, "$1")
	out = reUnder.ReplaceAllString(out, "$1")
	out = reHeading.ReplaceAllString(out, "")
	out = reLink.ReplaceAllString(out, "$1")
	out = reInlineCode.ReplaceAllString(out, "$1")
	out = reBulletItem.ReplaceAllString(out, "")
	out = reNumberItem.ReplaceAllString(out, "")
	out = reBlankRuns.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// StripCodeFenceWrapper removes a ```json ... ``` wrapper the model sometimes
// puts around structured output, without touching the JSON body itself.
func StripCodeFenceWrapper(text string) string {
	out := strings.TrimSpace(text)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
