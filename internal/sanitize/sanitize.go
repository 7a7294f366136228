package sanitize

import "strings"

// Clean strips markup and normalizes whitespace in pasted text before it
// reaches the extraction pipeline. Script and style blocks are removed with
// their contents; other tags are dropped but their text is kept.
func Clean(input string) string {
	text := strings.ReplaceAll(input, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = removeTagsWithContent(text, "script")
	text = removeTagsWithContent(text, "style")

	// Block-level closers become line breaks so header lines stay on their own line.
	text = strings.ReplaceAll(text, "<br>", "\n")
	text = strings.ReplaceAll(text, "<br/>", "\n")
	text = strings.ReplaceAll(text, "<br />", "\n")
	text = strings.ReplaceAll(text, "</p>", "\n\n")
	text = strings.ReplaceAll(text, "</div>", "\n")

	text = stripTags(text)

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, " ", " ")

	// Collapse runs of blank lines.
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(text)
}

// stripTags removes remaining markup while keeping inner text.
func stripTags(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	inTag := false
	for _, char := range text {
		switch {
		case char == '<':
			inTag = true
		case char == '>':
			inTag = false
		case !inTag:
			result.WriteRune(char)
		}
	}
	return result.String()
}

// removeTagsWithContent removes a tag and everything inside it.
func removeTagsWithContent(text, tag string) string {
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	for {
		lower := strings.ToLower(text)
		start := strings.Index(lower, openTag)
		if start == -1 {
			break
		}
		end := strings.Index(lower[start:], closeTag)
		if end == -1 {
			break
		}
		end += start + len(closeTag)
		text = text[:start] + text[end:]
	}

	return text
}
