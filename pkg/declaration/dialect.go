package declaration

import (
	"fmt"
	"path/filepath"
)

// ExclusionKeyword starts every exclusion directive line.
const ExclusionKeyword = "exclude"

// Dialect is the flavour of the Gradle build script being patched.
type Dialect int

// Supported dialects.
const (
	Groovy Dialect = iota
	Kotlin
)

// DialectFor returns Kotlin for build.gradle.kts files and Groovy otherwise.
func DialectFor(path string) Dialect {
	if filepath.Ext(path) == ".kts" {
		return Kotlin
	}
	return Groovy
}

func (d Dialect) String() string {
	if d == Kotlin {
		return "kotlin"
	}
	return "groovy"
}

// Exclusion renders the directive excluding one module.
func (d Dialect) Exclusion(module string) string {
	if d == Kotlin {
		return fmt.Sprintf("%s(module = %q)", ExclusionKeyword, module)
	}
	return fmt.Sprintf("%s module: %q", ExclusionKeyword, module)
}

// Call renders a parenthesized configuration call.
func (d Dialect) Call(name, args string) string {
	if d == Kotlin {
		return name + "(" + args + ")"
	}
	return name + " (" + args + ")"
}
