package declaration

import (
	"regexp"
	"strings"

	"github.com/lerenn/dep-pruner/pkg/graph"
)

// LineKind is the role of a line in the declaration file.
type LineKind int

// Line kinds produced by the classifier.
const (
	KindPlain LineKind = iota
	KindDeclaration
	KindExclusion
	KindBlockClose
)

func (k LineKind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindExclusion:
		return "exclusion"
	case KindBlockClose:
		return "block-close"
	default:
		return "plain"
	}
}

// Line is a classified line. Dependency is set for declarations only.
type Line struct {
	Kind       LineKind
	Text       string
	Dependency graph.DependencyID

	decl *declaration
}

var (
	callPattern      = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*)(.*)$`)
	literalPattern   = regexp.MustCompile(`["']([^"'\s]+)["']`)
	mapNotationRegex = regexp.MustCompile(`group\s*[:=]\s*["']([^"']+)["']\s*,\s*name\s*[:=]\s*["']([^"']+)["']`)
)

// Classifier classifies lines against the dependencies of an UnusedModuleMap.
type Classifier struct {
	keys []string
	ids  map[string]graph.DependencyID
}

// NewClassifier creates a Classifier recognizing declarations of the given dependencies.
// When several dependencies match one line, the lexicographically smallest wins.
func NewClassifier(unused graph.UnusedModuleMap) *Classifier {
	c := &Classifier{ids: map[string]graph.DependencyID{}}
	for _, id := range unused.Keys() {
		key := id.Key()
		if _, exists := c.ids[key]; exists {
			continue
		}
		c.ids[key] = id
		c.keys = append(c.keys, key)
	}
	return c
}

// Classify returns the kind of a single line.
func (c *Classifier) Classify(text string) Line {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, ExclusionKeyword):
		return Line{Kind: KindExclusion, Text: text}
	case trimmed == "}":
		return Line{Kind: KindBlockClose, Text: text}
	case trimmed == "" || isComment(trimmed):
		return Line{Kind: KindPlain, Text: text}
	}

	decl, ok := parseDeclaration(text)
	if !ok {
		return Line{Kind: KindPlain, Text: text}
	}

	coordinates := coordinatesOf(decl.code)
	for _, key := range c.keys {
		if coordinates[key] {
			return Line{Kind: KindDeclaration, Text: text, Dependency: c.ids[key], decl: decl}
		}
	}

	return Line{Kind: KindPlain, Text: text}
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*")
}

// declaration is the structure of a single-line dependency declaration.
type declaration struct {
	raw           string
	indent        string
	name          string
	args          string
	code          string // line without comment, block and line ending
	parenthesized bool
	opensBlock    bool
	inline        []string
	comment       string
	eol           string
}

// parseDeclaration splits `<indent><configuration> <args> [{ ... }] [// comment]`.
func parseDeclaration(text string) (*declaration, bool) {
	d := &declaration{raw: text}

	line := text
	if strings.HasSuffix(line, "\r") {
		d.eol = "\r"
		line = strings.TrimSuffix(line, "\r")
	}

	if idx := indexOutsideQuotes(line, "//"); idx >= 0 {
		d.comment = strings.TrimSpace(line[idx:])
		line = line[:idx]
	}
	line = strings.TrimRight(line, " \t")

	if idx := indexOutsideQuotes(line, "{"); idx >= 0 {
		block := line[idx+1:]
		switch {
		case strings.TrimSpace(block) == "":
			d.opensBlock = true
		case strings.HasSuffix(block, "}") && !strings.Contains(block[:len(block)-1], "}"):
			d.inline = splitStatements(block[:len(block)-1])
		default:
			return nil, false
		}
		line = strings.TrimRight(line[:idx], " \t")
	}

	m := callPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	d.indent, d.name = m[1], m[2]
	rest := m[4]

	switch {
	case strings.HasPrefix(rest, "("):
		if end := matchingParen(rest); end == len(rest)-1 {
			d.parenthesized = true
			d.args = rest[1:end]
		} else {
			d.args = rest
		}
	case strings.HasPrefix(rest, `"`), strings.HasPrefix(rest, "'"), strings.HasPrefix(rest, "group"):
		d.args = rest
	default:
		return nil, false
	}

	d.code = line
	return d, true
}

func splitStatements(block string) []string {
	var statements []string
	for _, statement := range strings.Split(block, ";") {
		if statement = strings.TrimSpace(statement); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// coordinatesOf returns the normalized group:artifact coordinates found in code.
func coordinatesOf(code string) map[string]bool {
	found := map[string]bool{}

	for _, m := range literalPattern.FindAllStringSubmatch(code, -1) {
		parts := strings.Split(m[1], ":")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		artifact, _, _ := strings.Cut(parts[1], "@")
		found[parts[0]+":"+artifact] = true
	}

	for _, m := range mapNotationRegex.FindAllStringSubmatch(code, -1) {
		found[m[1]+":"+m[2]] = true
	}

	return found
}
