package symbols

import (
	"bufio"
	"io"
	"regexp"
)

// importPattern matches `import a.b.C;`. Wildcard and static imports do not match.
var importPattern = regexp.MustCompile(`import\s+([A-Za-z0-9_.]+);`)

const maxLineSize = 1024 * 1024

// ExtractImports returns the imported symbols of a source file, one per
// matching line, in file order.
func ExtractImports(r io.Reader) ([]string, error) {
	var imports []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		match := importPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		imports = append(imports, match[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return imports, nil
}
