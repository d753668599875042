package java

import "strings"

type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Static
	Abstract
	Final
	Transient
	Volatile
	Default
	Synchronized
	Native
	Strictfp
)

var modifierOrder = []struct {
	mod     Modifiers
	keyword string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Static, "static"},
	{Abstract, "abstract"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Default, "default"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strictfp, "strictfp"},
}

func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// String prints the set in canonical declaration order.
func (m Modifiers) String() string {
	var words []string
	for _, entry := range modifierOrder {
		if m&entry.mod != 0 {
			words = append(words, entry.keyword)
		}
	}
	return strings.Join(words, " ")
}
