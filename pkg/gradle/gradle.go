// Package gradle wraps the Gradle command line.
package gradle

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=gradle.go -destination=mocks/gradle.gen.go -package=mocks

// Gradle interface provides Gradle command execution capabilities.
type Gradle interface {
	// Dependencies executes `gradle -q dependencies --configuration <configuration>` in the project directory.
	Dependencies(params DependenciesParams) (string, error)
}

// DependenciesParams contains parameters for Dependencies.
type DependenciesParams struct {
	ProjectDir    string
	Configuration string
}

type realGradle struct {
	command string
}

// NewGradle creates a new Gradle instance running the given executable (gradle, ./gradlew, ...).
func NewGradle(command string) Gradle {
	return &realGradle{
		command: command,
	}
}
