package pruner

import (
	"fmt"

	"github.com/lerenn/dep-pruner/configs"
	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/prompt"
)

var resolverChoices = []prompt.Choice{
	{Value: config.ResolverGradle, Description: "run the Gradle dependencies report"},
	{Value: config.ResolverFile, Description: "read an already resolved YAML file"},
}

// Init writes the configuration file and returns its path. Unless
// NonInteractive is set, the user is asked for each setting.
func (p *realPruner) Init(opts InitOpts) (string, error) {
	path := p.deps.Config.GetConfigPath()

	exists, err := p.deps.FS.Exists(path)
	if err != nil {
		return "", fmt.Errorf("failed to check configuration file: %w", err)
	}

	if exists && !opts.Force {
		if err := p.confirmOverwrite(path, opts.NonInteractive); err != nil {
			return "", err
		}
	}

	cfg := p.deps.Config.DefaultConfig()
	if !opts.NonInteractive {
		if cfg, err = p.promptConfig(cfg); err != nil {
			return "", err
		}
	}

	if cfg == p.deps.Config.DefaultConfig() {
		err = p.writeDefaultConfig(path, exists)
	} else {
		err = p.deps.Config.SaveConfig(cfg)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write configuration file: %w", err)
	}

	p.VerbosePrint("Wrote configuration to %s", path)
	return path, nil
}

func (p *realPruner) confirmOverwrite(path string, nonInteractive bool) error {
	if nonInteractive {
		return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, path)
	}

	overwrite, err := p.deps.Prompt.PromptForConfirmation(fmt.Sprintf("%s already exists. Overwrite it?", path), false)
	if err != nil {
		return err
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, path)
	}
	return nil
}

// promptConfig asks the user for the settings, proposing the values of cfg.
func (p *realPruner) promptConfig(cfg config.Config) (config.Config, error) {
	var err error

	if cfg.SourceDir, err = p.deps.Prompt.PromptForSourceDir(cfg.SourceDir); err != nil {
		return config.Config{}, err
	}
	if cfg.DeclarationFile, err = p.deps.Prompt.PromptForDeclarationFile(cfg.DeclarationFile); err != nil {
		return config.Config{}, err
	}

	resolver, err := p.deps.Prompt.PromptSelect("Choose the dependency resolver:", resolverChoices, cfg.Resolver)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Resolver = resolver.Value

	if cfg.Resolver == config.ResolverFile {
		if cfg.ResolvedFile, err = p.deps.Prompt.PromptForResolvedFile(cfg.ResolvedFile); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

// writeDefaultConfig writes the commented default configuration.
func (p *realPruner) writeDefaultConfig(path string, exists bool) error {
	if exists {
		p.VerbosePrint("Overwriting %s", path)
		return p.deps.FS.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644)
	}
	return p.deps.FS.CreateFileIfNotExists(path, configs.DefaultConfigYAML, 0644)
}
