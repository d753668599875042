package javadoc

import (
	"regexp"
	"strings"
)

var (
	blockTag  = regexp.MustCompile(`</?(?:div|h[1-6]|table|thead|tfoot|tbody|tr|th|td|ul|ol|li|dl|dt|dd)(?:\s[^>]+)?>`)
	childTag  = regexp.MustCompile(`^<(?:tr|thead|tfoot|tbody|li|dt|dd)>$`)
	paragraph = regexp.MustCompile(`\n\n(?:\n?[ \t]*\S[^\n]*)+`)
)

// Layout renders c as a documentation comment whose lines start with indent.
// An empty comment renders as "". The result has no trailing newline.
//
// Free text keeps its first paragraph bare and wraps every later paragraph
// in <p>...</p>. Block-level HTML tags that begin a source line start a fresh
// line in the output; opening tags other than list and table children get a
// blank line before them.
func Layout(c *Comment, indent string) string {
	if c.Empty() {
		return ""
	}

	prefix := indent + " * "
	var sb strings.Builder

	section := func() {
		if sb.Len() > 0 {
			sb.WriteString("\n")
			sb.WriteString(indent)
			sb.WriteString(" *")
		}
	}
	line := func() {
		if sb.Len() > 0 {
			sb.WriteString("\n")
			sb.WriteString(prefix)
		}
	}

	if text := strings.TrimSpace(c.Text); text != "" {
		sb.WriteString(cleanup(text, prefix))
	}

	var params []Tag
	for _, tag := range c.TypeParams {
		params = append(params, Tag{Name: "<" + tag.Name + ">", Text: tag.Text})
	}
	params = append(params, c.Params...)
	if documented(params) {
		section()
		writeTags(&sb, "param", params, indent, line)
	}

	if c.Return != "" {
		section()
		line()
		sb.WriteString("@return ")
		sb.WriteString(cleanup(strings.TrimSpace(c.Return), continuation(indent, len(" @return "))))
	}

	if documented(c.Throws) {
		section()
		writeTags(&sb, "throws", c.Throws, indent, line)
	}

	if len(c.See) > 0 {
		section()
		for _, ref := range c.See {
			line()
			sb.WriteString("@see ")
			sb.WriteString(ref)
		}
	}

	if len(c.Authors) > 0 {
		section()
		for _, author := range c.Authors {
			line()
			sb.WriteString("@author ")
			sb.WriteString(author)
		}
	}

	if c.Since != "" {
		section()
		line()
		sb.WriteString("@since ")
		sb.WriteString(c.Since)
	}

	content := sb.String()
	if !strings.Contains(content, "\n") {
		return indent + "/** " + content + " */"
	}
	return indent + "/**\n" + prefix + content + "\n" + indent + " */"
}

// writeTags prints the documented tags with their descriptions aligned in
// one column.
func writeTags(sb *strings.Builder, name string, tags []Tag, indent string, line func()) {
	width := 0
	for _, tag := range tags {
		if strings.TrimSpace(tag.Text) != "" && len(tag.Name) > width {
			width = len(tag.Name)
		}
	}
	cont := continuation(indent, len(" @"+name+" ")+width+1)

	for _, tag := range tags {
		text := strings.TrimSpace(tag.Text)
		if text == "" {
			continue
		}
		line()
		sb.WriteString("@")
		sb.WriteString(name)
		sb.WriteString(" ")
		sb.WriteString(tag.Name)
		sb.WriteString(strings.Repeat(" ", width-len(tag.Name)+1))
		sb.WriteString(cleanup(text, cont))
	}
}

// continuation returns the prefix that aligns wrapped lines under text that
// starts n columns after the comment's star.
func continuation(indent string, n int) string {
	return indent + " *" + strings.Repeat(" ", n)
}

// cleanup lays out text and prefixes every line after the first.
func cleanup(text, linePrefix string) string {
	dom := normalizeWhitespace(text)
	return prefixLines(layoutDOM(dom), linePrefix)
}

func layoutDOM(dom string) string {
	var sb strings.Builder

	tags := blockTag.FindAllStringIndex(dom, -1)
	end := len(dom)
	if len(tags) > 0 {
		end = tags[0][0]
	}
	if text := fragment(dom[:end], len(tags) > 0 && startsLine(dom, end)); text != "" {
		layoutText(&sb, text, false)
	}

	for i, loc := range tags {
		tag := dom[loc[0]:loc[1]]
		next := len(dom)
		if i+1 < len(tags) {
			next = tags[i+1][0]
		}
		closing := strings.HasPrefix(tag, "</")

		if startsLine(dom, loc[0]) {
			if !closing && !childTag.MatchString(tag) {
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(tag)

		if text := fragment(dom[loc[1]:next], next < len(dom) && startsLine(dom, next)); text != "" {
			layoutText(&sb, text, closing)
		}
	}

	return sb.String()
}

// fragment trims the text between two tags. Whitespace touching a line
// break is dropped; spaces between inline neighbours are kept.
func fragment(s string, beforeLine bool) string {
	lead := len(s) - len(strings.TrimLeft(s, " \t\r\n"))
	if strings.Contains(s[:lead], "\n") {
		s = s[lead:]
	}
	if beforeLine || strings.TrimSpace(s) == "" && strings.Contains(s, "\n") {
		s = strings.TrimRight(s, " \t\r\n")
	}
	return s
}

// startsLine reports whether only whitespace separates index from the
// previous line break.
func startsLine(dom string, index int) bool {
	for i := index - 1; i >= 0; i-- {
		switch dom[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		}
		return false
	}
	return false
}

func layoutText(sb *strings.Builder, text string, forceParagraph bool) {
	matches := paragraph.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		firstParagraph(sb, text, forceParagraph)
		return
	}

	if matches[0][0] > 0 {
		firstParagraph(sb, text[:matches[0][0]], forceParagraph)
	}
	to := 0
	for _, m := range matches {
		writeParagraph(sb, text[m[0]:m[1]])
		to = m[1]
	}
	if to < len(text) {
		writeParagraph(sb, text[to:])
	}
}

func firstParagraph(sb *strings.Builder, text string, force bool) {
	if force {
		writeParagraph(sb, text)
		return
	}
	sb.WriteString(text)
}

func writeParagraph(sb *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	sb.WriteString("\n\n<p>")
	sb.WriteString(text)
	sb.WriteString("</p>")
}

func prefixLines(s, linePrefix string) string {
	lines := strings.Split(s, "\n")
	blank := strings.TrimRight(linePrefix, " ")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimLeft(lines[i], " \t")
		if line == "" {
			lines[i] = blank
			continue
		}
		lines[i] = linePrefix + line
	}
	return strings.Join(lines, "\n")
}

// normalizeWhitespace empties whitespace-only lines and collapses runs of
// blank lines into one.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	var result []string
	prevEmpty := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !prevEmpty {
				result = append(result, "")
				prevEmpty = true
			}
		} else {
			result = append(result, strings.TrimRight(line, " \t"))
			prevEmpty = false
		}
	}

	return strings.Join(result, "\n")
}
