package graph

import (
	"bufio"
	"strings"
)

// Width of one indentation level in Gradle's dependency tree ("|    ").
const treeIndent = 5

var treeMarkers = []string{"+--- ", "\\--- "}

// ParseTree parses the output of `gradle dependencies --configuration <name>`.
// Depth-0 nodes become dependencies keyed by group:artifact and their
// depth-1 children become modules named after their artifact. Project
// nodes, constraints and deeper levels are ignored.
func ParseTree(output string) DependencyModuleMap {
	deps := DependencyModuleMap{}

	var current DependencyID
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		depth, coordinate, ok := parseTreeLine(scanner.Text())
		if !ok {
			continue
		}

		parts := splitCoordinate(coordinate)
		switch {
		case depth == 0:
			current = ""
			if len(parts) < 2 {
				continue
			}
			current = DependencyID(parts[0] + ":" + parts[1])
			if _, exists := deps[current]; !exists {
				deps[current] = []ModuleID{}
			}
		case depth == 1 && current != "" && len(parts) >= 2:
			deps[current] = appendUnique(deps[current], parts[1])
		}
	}

	return deps
}

// parseTreeLine returns the depth and the coordinate of a tree node line.
// The coordinate is empty for project and constraint nodes.
func parseTreeLine(line string) (int, string, bool) {
	line = strings.TrimRight(line, "\r")

	idx := -1
	for _, marker := range treeMarkers {
		if i := strings.Index(line, marker); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return 0, "", false
	}

	depth := idx / treeIndent
	node := strings.TrimSpace(line[idx+len(treeMarkers[0]):])
	if strings.HasPrefix(node, "project ") || strings.HasSuffix(node, "(c)") || strings.HasSuffix(node, "(n)") {
		// Not a module node, but still closes the subtree of the previous one.
		return depth, "", true
	}

	coordinate, _, _ := strings.Cut(node, " ")
	return depth, coordinate, true
}

// splitCoordinate splits group:artifact[:version] and drops empty parts.
func splitCoordinate(coordinate string) []string {
	var parts []string
	for _, part := range strings.Split(coordinate, ":") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
