package java

import (
	"slices"
	"strings"
)

// WildcardMember is the member name of an on-demand import.
const WildcardMember = "*"

type ImportMode uint8

const (
	// ImportDefault lets the table decide: explicit until promoted.
	ImportDefault ImportMode = iota
	// ImportWildcard imports the whole container on demand.
	ImportWildcard
	// ImportQualified pins a single-type import that is never promoted.
	ImportQualified
)

type Import struct {
	Container string
	Member    string
	Mode      ImportMode
	Static    bool
	Implicit  bool
}

func (i Import) Key() string {
	return i.Container + "." + i.Member
}

// ImportTable tracks the imports of one compilation unit and decides how
// type references are spelled.
//
// ImportTable is not thread-safe.
type ImportTable struct {
	pkg        string
	containers map[string]map[string]Import
	// local holds the simple names of same-package types seen so far.
	local map[string]bool
}

func NewImportTable(pkg string) *ImportTable {
	return &ImportTable{
		pkg:        pkg,
		containers: make(map[string]map[string]Import),
		local:      make(map[string]bool),
	}
}

func (t *ImportTable) Package() string {
	return t.pkg
}

// Add registers member of container. Duplicates and clashing simple names
// are ignored; a third explicit member of one container promotes it to a
// wildcard import.
func (t *ImportTable) Add(container, member string, mode ImportMode, static, implicit bool) {
	if mode == ImportDefault {
		if container == t.pkg {
			if !static && member != WildcardMember {
				t.local[member] = true
			}
			return
		}
		if existing, ok := t.containers[container]; ok {
			if _, ok := existing[member]; ok {
				return
			}
			if _, ok := existing[WildcardMember]; ok {
				return
			}
		}
	}

	if member != WildcardMember && t.claimed(member) {
		return
	}

	members, ok := t.containers[container]
	if !ok {
		members = make(map[string]Import)
		t.containers[container] = members
	}
	if _, ok := members[member]; ok && mode == ImportDefault {
		return
	}

	entry := Import{Container: container, Member: member, Mode: mode, Static: static, Implicit: implicit}

	if mode == ImportQualified {
		members[member] = entry
		return
	}
	if _, ok := members[WildcardMember]; ok {
		return
	}

	var explicit []string
	for name, imp := range members {
		if imp.Mode == ImportDefault {
			explicit = append(explicit, name)
		}
	}
	if len(explicit) >= 2 || mode == ImportWildcard {
		for _, name := range explicit {
			delete(members, name)
		}
		entry.Member = WildcardMember
		members[WildcardMember] = entry
		return
	}
	members[member] = entry
}

func (t *ImportTable) claimed(member string) bool {
	for _, members := range t.containers {
		if _, ok := members[member]; ok {
			return true
		}
	}
	return false
}

// claimedElsewhere reports whether a container other than container holds
// an explicit entry for the simple name.
func (t *ImportTable) claimedElsewhere(container, name string) bool {
	for c, members := range t.containers {
		if c == container {
			continue
		}
		if _, ok := members[name]; ok {
			return true
		}
	}
	return false
}

// Import registers the top-level class of typ and, recursively, every type
// it mentions.
func (t *ImportTable) Import(typ Type) {
	t.ImportAs(typ, ImportDefault)
}

func (t *ImportTable) ImportAs(typ Type, mode ImportMode) {
	if t == nil {
		return
	}
	for _, arg := range typ.Arguments {
		t.Import(arg)
	}
	for _, bound := range typ.Bounds {
		t.Import(bound)
	}
	if typ.Package == "" || typ.Primitive != NotPrimitive || typ.IsVoid() {
		return
	}
	t.Add(typ.Package, typ.Outermost(), mode, false, false)
}

// ImportPackage imports every member of pkg on demand.
func (t *ImportTable) ImportPackage(pkg string) {
	t.Add(pkg, WildcardMember, ImportWildcard, false, false)
}

// ImportStatic registers a static member of typ, or all of them when member
// is "*".
func (t *ImportTable) ImportStatic(typ Type, member string) {
	mode := ImportDefault
	if member == WildcardMember {
		mode = ImportWildcard
	}
	t.Add(typ.QualifiedName(), member, mode, true, false)
}

func (t *ImportTable) IsImported(typ Type) bool {
	members, ok := t.containers[typ.Package]
	if !ok {
		return false
	}
	if _, ok := members[WildcardMember]; ok {
		return true
	}
	_, ok = members[typ.Outermost()]
	return ok
}

// IsResolved reports whether typ may be printed by its simple member chain.
// A single-type import wins over a same-package type, which in turn wins
// over on-demand imports, java.lang included.
func (t *ImportTable) IsResolved(typ Type) bool {
	if typ.Package == "" {
		return true
	}
	outer := typ.Outermost()
	if members, ok := t.containers[typ.Package]; ok {
		if _, ok := members[outer]; ok {
			return true
		}
	}
	if typ.Package != t.pkg && t.local[outer] {
		return false
	}
	if !t.IsImported(typ) && typ.Package != t.pkg {
		return false
	}
	return !t.claimedElsewhere(typ.Package, outer)
}

// ResolvedName returns the text of a plain reference to typ.
func (t *ImportTable) ResolvedName(typ Type) string {
	return typeText(typ, t.nameOf)
}

func (t *ImportTable) nameOf(typ Type) string {
	if t.IsResolved(typ) {
		return typ.MemberChain()
	}
	return typ.QualifiedName()
}

// Declaration renders typ as a type parameter declaration, including its
// bounds.
func (t *ImportTable) Declaration(typ Type) string {
	var sb strings.Builder
	sb.WriteString(typ.Name)
	if typ.Bound != BoundNone && len(typ.Bounds) > 0 {
		sb.WriteString(" ")
		sb.WriteString(typ.Bound.String())
		sb.WriteString(" ")
		writeBounds(&sb, typ.Bounds, t.nameOf)
	}
	return sb.String()
}

// Members returns the sorted member names registered for container.
func (t *ImportTable) Members(container string) []string {
	var names []string
	for name := range t.containers[container] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Printable returns the entries that belong in the import section, sorted by
// container.member.
func (t *ImportTable) Printable() []Import {
	var entries []Import
	for _, members := range t.containers {
		for _, imp := range members {
			if !imp.Implicit {
				entries = append(entries, imp)
			}
		}
	}
	slices.SortFunc(entries, func(a, b Import) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return entries
}
