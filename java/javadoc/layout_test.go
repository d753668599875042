package javadoc

import "testing"

func TestLayout(t *testing.T) {
	tests := []struct {
		name     string
		comment  *Comment
		indent   string
		expected string
	}{
		{
			name:     "nil",
			comment:  nil,
			expected: "",
		},
		{
			name:     "blank text",
			comment:  Text("  \n "),
			expected: "",
		},
		{
			name:     "single line",
			comment:  Text("Hello."),
			indent:   "    ",
			expected: "    /** Hello. */",
		},
		{
			name:     "two paragraphs",
			comment:  Text("First paragraph.\n\nSecond paragraph."),
			indent:   "    ",
			expected: "    /**\n     * First paragraph.\n     *\n     * <p>Second paragraph.</p>\n     */",
		},
		{
			name:     "blank runs collapse",
			comment:  Text("One.\n\n\n   \nTwo.\n\nThree."),
			expected: "/**\n * One.\n *\n * <p>Two.</p>\n *\n * <p>Three.</p>\n */",
		},
		{
			name:     "continuation lines",
			comment:  Text("  Does a thing\n  across lines."),
			expected: "/**\n * Does a thing\n * across lines.\n */",
		},
		{
			name: "aligned params",
			comment: &Comment{
				Text:   "Adds.",
				Params: []Tag{{Name: "a", Text: "first"}, {Name: "bb", Text: "second\nline"}},
				Return: "the sum",
			},
			expected: "/**\n * Adds.\n *\n * @param a  first\n * @param bb second\n *           line\n *\n * @return the sum\n */",
		},
		{
			name: "undocumented params are skipped",
			comment: &Comment{
				Text:   "Runs.",
				Params: []Tag{{Name: "verbose", Text: ""}},
			},
			expected: "/** Runs. */",
		},
		{
			name: "type params",
			comment: &Comment{
				TypeParams: []Tag{{Name: "T", Text: "the element"}},
				Params:     []Tag{{Name: "value", Text: "v"}},
			},
			expected: "/**\n * @param <T>   the element\n * @param value v\n */",
		},
		{
			name: "trailing sections",
			comment: &Comment{
				Throws:  []Tag{{Name: "IOException", Text: "if it fails"}},
				See:     []string{"Other#method()"},
				Authors: []string{"jane"},
				Since:   "1.2",
			},
			expected: "/**\n * @throws IOException if it fails\n *\n * @see Other#method()\n *\n * @author jane\n *\n * @since 1.2\n */",
		},
		{
			name:     "block tags",
			comment:  Text("Items:\n<ul>\n<li>one</li>\n<li>two</li>\n</ul>\nAfter."),
			expected: "/**\n * Items:\n *\n * <ul>\n * <li>one</li>\n * <li>two</li>\n * </ul>\n *\n * <p>After.</p>\n */",
		},
		{
			name:     "inline block tag stays on its line",
			comment:  Text("Keep <code>x</code> and <b>y</b> inline."),
			expected: "/** Keep <code>x</code> and <b>y</b> inline. */",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(tt.comment, tt.indent)
			if got != tt.expected {
				t.Errorf("Layout mismatch\ngot:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestLayoutIsRepeatable(t *testing.T) {
	c := &Comment{
		Text:   "Finds things.\n\nSlowly.",
		Params: []Tag{{Name: "query", Text: "what to find"}},
	}
	first := Layout(c, "  ")
	second := Layout(c, "  ")
	if first != second {
		t.Errorf("layout differs between calls:\n%s\n%s", first, second)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := &Comment{Params: []Tag{{Name: "a", Text: "x"}}}
	clone := c.Clone()
	clone.Params = append(clone.Params, Tag{Name: "b", Text: "y"})
	clone.Params[0].Text = "changed"

	if len(c.Params) != 1 || c.Params[0].Text != "x" {
		t.Errorf("clone shares params with its source: %+v", c.Params)
	}
	if (*Comment)(nil).Clone() == nil {
		t.Errorf("clone of nil must be usable")
	}
}
