package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelconv/modelconv/internal/config"
	"github.com/modelconv/modelconv/pkg/modelconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. They match the modelconv.yaml field names.
const (
	keyModelsDir       = "models_dir"
	keyOutputDir       = "output_dir"
	keyCompilerCommand = "compiler.command"
)

// Environment variables consulted after flags and before modelconv.yaml.
const (
	EnvModelsDir = "MODELCONV_MODELS_DIR"
	EnvOutputDir = "MODELCONV_OUTPUT_DIR"
	EnvCompiler  = "MODELCONV_COMPILER"
)

// Flag names.
const (
	flagModelsDir = "models-dir"
	flagOutputDir = "output-dir"
	flagConfig    = "config"
)

// settings is the fully resolved input of a command run.
type settings struct {
	ModelsDir       string
	OutputDir       string
	CompilerCommand []string
	ConfigFile      string
}

// addDirFlags registers the directory flags shared by convert and list.
// Camel-case spellings (--modelsDir, --outputDir) resolve to the same flags.
func addDirFlags(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().SetNormalizeFunc(normalizeFlagName)
	cmd.Flags().String(flagModelsDir, modelconv.DefaultModelsDir,
		"Directory holding one folder per model\n"+
			"Precedence: --models-dir > $"+EnvModelsDir+" > modelconv.yaml > "+modelconv.DefaultModelsDir)
	if withOutput {
		cmd.Flags().String(flagOutputDir, modelconv.DefaultOutputDir,
			"Directory receiving the generated .tsx components\n"+
				"Precedence: --output-dir > $"+EnvOutputDir+" > modelconv.yaml > "+modelconv.DefaultOutputDir)
	}
	cmd.Flags().String(flagConfig, "",
		"Path to a modelconv.yaml file (default: ./"+config.ConfigFileName+" if present)")
}

// normalizeFlagName maps camelCase flag names onto their kebab-case form.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return pflag.NormalizedName(strings.ReplaceAll(b.String(), "_", "-"))
}

// resolveSettings layers flag > environment > modelconv.yaml > default.
// A .env file in the working directory is loaded into the environment first
// and never overrides variables that are already set.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyModelsDir, modelconv.DefaultModelsDir)
	v.SetDefault(keyOutputDir, modelconv.DefaultOutputDir)
	v.SetDefault(keyCompilerCommand, modelconv.DefaultCompilerCommand)

	configPath, _ := cmd.Flags().GetString(flagConfig)
	projectCfg, usedPath, err := loadProjectConfig(configPath)
	if err != nil {
		return settings{}, err
	}
	if projectCfg != nil {
		if projectCfg.ModelsDir != "" {
			v.SetDefault(keyModelsDir, projectCfg.ModelsDir)
		}
		if projectCfg.OutputDir != "" {
			v.SetDefault(keyOutputDir, projectCfg.OutputDir)
		}
		if len(projectCfg.Compiler.Command) > 0 {
			v.SetDefault(keyCompilerCommand, projectCfg.Compiler.Command)
		}
	}

	_ = v.BindEnv(keyModelsDir, EnvModelsDir)
	_ = v.BindEnv(keyOutputDir, EnvOutputDir)
	_ = v.BindEnv(keyCompilerCommand, EnvCompiler)

	if f := cmd.Flags().Lookup(flagModelsDir); f != nil {
		_ = v.BindPFlag(keyModelsDir, f)
	}
	if f := cmd.Flags().Lookup(flagOutputDir); f != nil {
		_ = v.BindPFlag(keyOutputDir, f)
	}

	s := settings{
		ModelsDir:       v.GetString(keyModelsDir),
		OutputDir:       v.GetString(keyOutputDir),
		CompilerCommand: v.GetStringSlice(keyCompilerCommand),
		ConfigFile:      usedPath,
	}
	if len(s.CompilerCommand) == 0 {
		return settings{}, fmt.Errorf("compiler command is empty: %w", modelconv.ErrInvalidConfig)
	}
	return s, nil
}

// loadProjectConfig reads an explicit config path, or ./modelconv.yaml when
// present. An explicit path that does not exist is an error; a missing
// default file is not.
func loadProjectConfig(explicitPath string) (*config.ProjectConfig, string, error) {
	if explicitPath != "" {
		cfg, err := config.LoadFile(explicitPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %v: %w", explicitPath, err, modelconv.ErrInvalidConfig)
		}
		return cfg, explicitPath, nil
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, modelconv.ErrInvalidConfig)
	}
	return cfg, config.ConfigFileName, nil
}
