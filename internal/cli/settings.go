package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/config"
	"github.com/sosocrosswalk/soso/internal/logging"
	"github.com/sosocrosswalk/soso/internal/params"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// Environment variables feeding flag defaults.
const (
	envRepositoryRoot = "SOSO_REPOSITORY_ROOT"
	envLogFormat      = "SOSO_LOG_FORMAT"
)

// conversionFlagValues are the flags shared by convert and batch.
type conversionFlagValues struct {
	strategy       string
	extended       bool
	repositoryRoot string
	inLanguage     string
	set            []string
	setJSON        []string
	overridesFiles []string
}

// conversionSettings is what the flags, environment and soso.yaml
// resolve to.
type conversionSettings struct {
	Strategy       string
	Extended       bool
	RepositoryRoot string
	Overrides      map[string]any
}

func addConversionFlags(cmd *cobra.Command, f *conversionFlagValues) {
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", soso.DefaultStrategy,
		"Source schema: spase, eml, or auto to detect from content")
	cmd.Flags().BoolVar(&f.extended, "extended", false,
		"Derive contributor, publisher, funding, license and provenance links\n"+
			"in addition to the baseline crosswalk")
	cmd.Flags().StringVar(&f.repositoryRoot, "repository-root", "",
		"Directory holding sibling SPASE records (Person, Instrument, Observatory).\n"+
			"Default: inferred from the record path and its ResourceID.\n"+
			"Alternative: SOSO_REPOSITORY_ROOT environment variable")
	cmd.Flags().StringVar(&f.inLanguage, "in-language", "",
		"inLanguage of the output (BCP 47 tag, e.g. en-US)")
	cmd.Flags().StringArrayVar(&f.set, "set", nil,
		"Override a property with a string value (key=value, can be repeated)")
	cmd.Flags().StringArrayVar(&f.setJSON, "set-json", nil,
		"Override a property with a JSON value (key=<json>, can be repeated).\n"+
			`Example: --set-json 'provider={"@type":"Organization","name":"SPDF"}'`)
	cmd.Flags().StringSliceVar(&f.overridesFiles, "overrides-file", nil,
		"Load string overrides from an env-style file (can be repeated).\n"+
			"Later files override earlier ones; --set and --set-json override files")

	_ = cmd.RegisterFlagCompletionFunc("strategy", completeStrategyNames)
	_ = cmd.RegisterFlagCompletionFunc("repository-root", completeDirectories)
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if ./soso.yaml does not exist (not an error); a
// missing --config file is an error.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	explicit, _ := cmd.Flags().GetString("config")
	if explicit != "" {
		cfg, err := config.LoadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

// resolveConversion applies precedence flag > environment > soso.yaml >
// default to every conversion setting, and merges override layers.
func resolveConversion(cmd *cobra.Command, f *conversionFlagValues, cfg *config.ProjectConfig, logger soso.Logger) (conversionSettings, error) {
	if cfg == nil {
		cfg = &config.ProjectConfig{}
	}
	s := conversionSettings{
		Strategy:       f.strategy,
		Extended:       f.extended,
		RepositoryRoot: f.repositoryRoot,
	}

	if !cmd.Flags().Changed("strategy") && cfg.Strategy != "" {
		s.Strategy = cfg.Strategy
	}
	if !cmd.Flags().Changed("extended") {
		s.Extended = cfg.Extended
	}
	if !cmd.Flags().Changed("repository-root") {
		if env := os.Getenv(envRepositoryRoot); env != "" {
			s.RepositoryRoot = env
		} else {
			s.RepositoryRoot = cfg.RepositoryRoot
		}
	}

	layers := []map[string]any{languageLayer(cfg.InLanguage), cfg.Overrides}
	for _, path := range f.overridesFiles {
		values, err := params.LoadOverridesFile(path)
		if err != nil {
			return conversionSettings{}, err
		}
		logger.Verbose("Loaded %d override(s) from %s", len(values), path)
		layers = append(layers, params.Strings(values))
	}

	setValues, err := params.ParseKeyValuePairs(f.set)
	if err != nil {
		return conversionSettings{}, fmt.Errorf("invalid --set: %w", err)
	}
	jsonValues, err := params.ParseJSONPairs(f.setJSON)
	if err != nil {
		return conversionSettings{}, fmt.Errorf("invalid --set-json: %w", err)
	}
	layers = append(layers, params.Strings(setValues), jsonValues, languageLayer(f.inLanguage))

	s.Overrides = params.Merge(layers...)
	if len(setValues)+len(jsonValues) > 0 {
		logger.Verbose("CLI overrides set %d value(s)", len(setValues)+len(jsonValues))
	}
	return s, nil
}

func languageLayer(tag string) map[string]any {
	if tag == "" {
		return nil
	}
	return map[string]any{"inLanguage": tag}
}

// newLogger picks the logger for --log-format, SOSO_LOG_FORMAT or log.format.
func newLogger(cmd *cobra.Command, cfg *config.ProjectConfig) (soso.Logger, error) {
	format, _ := cmd.Flags().GetString("log-format")
	level := ""
	if cfg != nil {
		level = cfg.Log.Level
	}
	if format == "" {
		format = os.Getenv(envLogFormat)
	}
	if format == "" && cfg != nil {
		format = cfg.Log.Format
	}
	switch format {
	case "", config.LogFormatConsole, config.LogFormatJSON:
	default:
		return nil, fmt.Errorf("log format %q must be %s or %s: %w",
			format, config.LogFormatConsole, config.LogFormatJSON, soso.ErrInvalidConfig)
	}
	return logging.New(format, level, getVerboseFlag(cmd)), nil
}
