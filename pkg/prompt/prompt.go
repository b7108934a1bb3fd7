package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a selectable value with a short description.
type Choice struct {
	Value       string
	Description string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForSourceDir prompts the user for the directory scanned for imports.
	PromptForSourceDir(defaultSourceDir string) (string, error)

	// PromptForDeclarationFile prompts the user for the build script to patch.
	PromptForDeclarationFile(defaultDeclarationFile string) (string, error)

	// PromptForResolvedFile prompts the user for the resolved dependencies file.
	PromptForResolvedFile(defaultResolvedFile string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelect prompts the user to pick one of choices, starting on defaultValue.
	PromptSelect(title string, choices []Choice, defaultValue string) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// PromptForSourceDir prompts the user for the directory scanned for imports.
func (p *realPrompt) PromptForSourceDir(defaultSourceDir string) (string, error) {
	return p.promptWithDefault("Choose the source directory to scan "+
		"(ex: src/main/java, app/src/main/java)", defaultSourceDir)
}

// PromptForDeclarationFile prompts the user for the build script to patch.
func (p *realPrompt) PromptForDeclarationFile(defaultDeclarationFile string) (string, error) {
	return p.promptWithDefault("Choose the build script to patch "+
		"(ex: build.gradle, build.gradle.kts)", defaultDeclarationFile)
}

// PromptForResolvedFile prompts the user for the resolved dependencies file.
func (p *realPrompt) PromptForResolvedFile(defaultResolvedFile string) (string, error) {
	if defaultResolvedFile == "" {
		defaultResolvedFile = "dependencies.yaml"
	}
	return p.promptWithDefault("Choose the resolved dependencies file "+
		"(ex: dependencies.yaml, build/deps.yaml)", defaultResolvedFile)
}

func (p *realPrompt) promptWithDefault(message, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s: [default: %s]: ", message, defaultValue)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Use default if input is empty
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelect prompts the user to pick one of choices.
func (p *realPrompt) PromptSelect(title string, choices []Choice, defaultValue string) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	return promptSelectBubbleTea(title, choices, defaultValue)
}
