//go:build unit

package declaration

import (
	"strings"
	"testing"

	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var widgetsUnused = graph.UnusedModuleMap{
	"com.acme:widgets-lib": {"widgets-extra"},
}

func patchString(t *testing.T, content string, unused graph.UnusedModuleMap, dialect Dialect) (string, Result) {
	t.Helper()
	result := Patch(Parse(content), unused, dialect)
	return result.Document.String(), result
}

func TestPatch_ScenarioB(t *testing.T) {
	out, result := patchString(t, `implementation "com.acme:widgets-lib:1.2.0"`, widgetsUnused, Groovy)

	assert.Equal(t, strings.Join([]string{
		`implementation ("com.acme:widgets-lib:1.2.0") {`,
		`    exclude module: "widgets-extra"`,
		`}`,
	}, "\n"), out)

	require.Len(t, result.Edits, 1)
	assert.Equal(t, Edit{
		Line:       1,
		Dependency: "com.acme:widgets-lib",
		Modules:    []graph.ModuleID{"widgets-extra"},
		Normalized: true,
	}, result.Edits[0])
}

func TestPatch_ScenarioC_Idempotent(t *testing.T) {
	once, _ := patchString(t, `implementation "com.acme:widgets-lib:1.2.0"`, widgetsUnused, Groovy)
	twice, result := patchString(t, once, widgetsUnused, Groovy)

	assert.Equal(t, once, twice)
	require.Len(t, result.Edits, 1)
	assert.False(t, result.Edits[0].Normalized)
	assert.Equal(t, 1, result.Edits[0].RemovedDirectives)
}

func TestPatch_ScenarioD_NoMatchingLine(t *testing.T) {
	content := "plugins {\n    id 'java'\n}\n\ndependencies {\n    implementation 'org.slf4j:slf4j-api:2.0.9'\n}\n"

	out, result := patchString(t, content, widgetsUnused, Groovy)

	assert.Equal(t, content, out)
	assert.Empty(t, result.Edits)
	assert.False(t, result.Changed(Parse(content)))
}

func TestPatch_RealisticBuildFile(t *testing.T) {
	content := `plugins {
	id 'java'
}

// Widgets are pinned, see ADR-12
dependencies {
    implementation "com.acme:widgets-lib:1.2.0" // UI toolkit
    implementation('com.google.guava:guava:32.1.2-jre')
    testImplementation   'org.junit.jupiter:junit-jupiter:5.10.0'
    // implementation "com.acme:widgets-lib:0.9.0"
}
`
	unused := graph.UnusedModuleMap{
		"com.acme:widgets-lib":   {"widgets-extra", "widgets-io"},
		"com.google.guava:guava": {"failureaccess"},
	}

	out, result := patchString(t, content, unused, Groovy)

	assert.Equal(t, `plugins {
	id 'java'
}

// Widgets are pinned, see ADR-12
dependencies {
    implementation ("com.acme:widgets-lib:1.2.0") { // UI toolkit
        exclude module: "widgets-extra"
        exclude module: "widgets-io"
    }
    implementation('com.google.guava:guava:32.1.2-jre') {
        exclude module: "failureaccess"
    }
    testImplementation   'org.junit.jupiter:junit-jupiter:5.10.0'
    // implementation "com.acme:widgets-lib:0.9.0"
}
`, out)
	require.Len(t, result.Edits, 2)
	assert.Equal(t, 7, result.Edits[0].Line)
	assert.Equal(t, 8, result.Edits[1].Line)

	again, _ := patchString(t, out, unused, Groovy)
	assert.Equal(t, out, again)
}

func TestPatch_ReplacesPreviousDirectives(t *testing.T) {
	content := `    implementation("com.acme:widgets-lib:1.2.0") {
        exclude module: "widgets-old"
        exclude module: "widgets-extra"
    }`

	out, result := patchString(t, content, widgetsUnused, Groovy)

	assert.Equal(t, `    implementation("com.acme:widgets-lib:1.2.0") {
        exclude module: "widgets-extra"
    }`, out)
	assert.Equal(t, 2, result.Edits[0].RemovedDirectives)
	assert.False(t, result.Edits[0].Normalized)
}

func TestPatch_KeepsOtherStatementsOfExistingBlock(t *testing.T) {
	content := `implementation("com.acme:widgets-lib:1.2.0") {
    exclude module: "widgets-old"
    transitive = true
}`

	out, _ := patchString(t, content, widgetsUnused, Groovy)

	expected := `implementation("com.acme:widgets-lib:1.2.0") {
    exclude module: "widgets-extra"
    transitive = true
}`
	assert.Equal(t, expected, out)

	again, _ := patchString(t, out, widgetsUnused, Groovy)
	assert.Equal(t, expected, again)
}

func TestPatch_OpensInlineBlock(t *testing.T) {
	content := `implementation("com.acme:widgets-lib:1.2.0") { exclude module: "widgets-old"; transitive = true }`

	out, _ := patchString(t, content, widgetsUnused, Groovy)

	expected := `implementation("com.acme:widgets-lib:1.2.0") {
    exclude module: "widgets-extra"
    transitive = true
}`
	assert.Equal(t, expected, out)

	again, _ := patchString(t, out, widgetsUnused, Groovy)
	assert.Equal(t, expected, again)
}

func TestPatch_Kotlin(t *testing.T) {
	content := "dependencies {\n    implementation(\"com.acme:widgets-lib:1.2.0\")\n}\n"

	out, _ := patchString(t, content, widgetsUnused, Kotlin)

	assert.Equal(t, "dependencies {\n    implementation(\"com.acme:widgets-lib:1.2.0\") {\n        exclude(module = \"widgets-extra\")\n    }\n}\n", out)
}

func TestPatch_MapNotation(t *testing.T) {
	content := `compile group: 'com.acme', name: 'widgets-lib', version: '1.2.0'`

	out, _ := patchString(t, content, widgetsUnused, Groovy)

	assert.Equal(t, `compile (group: 'com.acme', name: 'widgets-lib', version: '1.2.0') {
    exclude module: "widgets-extra"
}`, out)
}

func TestPatch_PreservesCRLF(t *testing.T) {
	content := "dependencies {\r\n  implementation 'com.acme:widgets-lib:1.2.0'\r\n}\r\n"

	out, _ := patchString(t, content, widgetsUnused, Groovy)

	assert.Equal(t, "dependencies {\r\n  implementation ('com.acme:widgets-lib:1.2.0') {\r\n      exclude module: \"widgets-extra\"\r\n  }\r\n}\r\n", out)
}

func TestPatch_NonInterference(t *testing.T) {
	lines := []string{
		"\tdef widgets = \"com.acme:widgets-lib:1.2.0\"   ",
		"  // implementation \"com.acme:widgets-lib:1.2.0\"",
		"implementation \"com.acme:widgets-library:1.2.0\"",
		"    exclude module: \"stray\"",
		"implementation \"com.acme:widgets-lib:1.2.0\"",
		"   }   ",
		"",
	}

	out, result := patchString(t, strings.Join(lines, "\n"), widgetsUnused, Groovy)
	outLines := strings.Split(out, "\n")

	require.Len(t, result.Edits, 1)
	assert.Equal(t, lines[:4], outLines[:4])
	assert.Equal(t, lines[5:], outLines[len(outLines)-2:])
}

func TestPatch_TieBreakIsLexicographic(t *testing.T) {
	unused := graph.UnusedModuleMap{
		"org.zeta:zeta":   {"zeta-extra"},
		"com.alpha:alpha": {"alpha-extra"},
	}
	content := `implementation "org.zeta:zeta:1.0", "com.alpha:alpha:1.0"`

	out, result := patchString(t, content, unused, Groovy)

	require.Len(t, result.Edits, 1)
	assert.Equal(t, graph.DependencyID("com.alpha:alpha"), result.Edits[0].Dependency)
	assert.Contains(t, out, `exclude module: "alpha-extra"`)
	assert.NotContains(t, out, "zeta-extra")
}

func TestPatch_VersionedKeysMatchByGroupAndArtifact(t *testing.T) {
	unused := graph.UnusedModuleMap{"com.acme:widgets-lib:1.2.0": {"widgets-extra"}}

	out, result := patchString(t, `api 'com.acme:widgets-lib:2.0.0@jar'`, unused, Groovy)

	require.Len(t, result.Edits, 1)
	assert.Equal(t, "api ('com.acme:widgets-lib:2.0.0@jar') {\n    exclude module: \"widgets-extra\"\n}", out)
}

func TestDocument_RoundTrip(t *testing.T) {
	for _, content := range []string{"", "\n", "a\nb", "a\nb\n", "a\r\n\r\n"} {
		assert.Equal(t, content, Parse(content).String())
	}
}
