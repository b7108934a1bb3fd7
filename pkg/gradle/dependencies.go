package gradle

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Dependencies executes `gradle -q dependencies --configuration <configuration>` in the project directory.
func (g *realGradle) Dependencies(params DependenciesParams) (string, error) {
	args := []string{"-q", "dependencies", "--configuration", params.Configuration}

	cmd := exec.Command(g.command, args...)
	cmd.Dir = params.ProjectDir

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return "", fmt.Errorf("%w: %w (command: %s %s, output: %s)",
			ErrCommandFailed, err, g.command, strings.Join(args, " "), stderr)
	}

	return string(output), nil
}
