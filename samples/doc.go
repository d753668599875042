package samples

import "github.com/dhamidi/jgen/java/javadoc"

func doc(text, since string) *javadoc.Comment {
	return &javadoc.Comment{Text: text, Since: since, Authors: []string{"jgen"}}
}
