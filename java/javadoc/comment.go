// Package javadoc models documentation comments and lays them out as
// /** ... */ blocks.
package javadoc

import "strings"

// Tag documents one named entity: a parameter, a type parameter or a thrown
// exception.
type Tag struct {
	Name string
	Text string
}

// Comment is the documentation attached to a declaration.
type Comment struct {
	Text       string
	TypeParams []Tag // names without angle brackets
	Params     []Tag
	Return     string
	Throws     []Tag
	See        []string
	Authors    []string
	Since      string
}

// Text returns a comment holding only free text.
func Text(text string) *Comment {
	return &Comment{Text: text}
}

// Empty reports whether c would print nothing.
func (c *Comment) Empty() bool {
	if c == nil {
		return true
	}
	return strings.TrimSpace(c.Text) == "" &&
		!documented(c.TypeParams) &&
		!documented(c.Params) &&
		c.Return == "" &&
		!documented(c.Throws) &&
		len(c.See) == 0 &&
		len(c.Authors) == 0 &&
		c.Since == ""
}

// Clone returns a copy whose tag slices can be appended to without touching
// c.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return &Comment{}
	}
	clone := *c
	clone.TypeParams = append([]Tag(nil), c.TypeParams...)
	clone.Params = append([]Tag(nil), c.Params...)
	clone.Throws = append([]Tag(nil), c.Throws...)
	clone.See = append([]string(nil), c.See...)
	clone.Authors = append([]string(nil), c.Authors...)
	return &clone
}

func documented(tags []Tag) bool {
	for _, tag := range tags {
		if strings.TrimSpace(tag.Text) != "" {
			return true
		}
	}
	return false
}
