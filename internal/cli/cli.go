// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/cssnapshot/internal/config"
	"github.com/temirov/cssnapshot/internal/filter"
	"github.com/temirov/cssnapshot/internal/parser"
	"github.com/temirov/cssnapshot/internal/report"
	"github.com/temirov/cssnapshot/internal/services/clipboard"
	"github.com/temirov/cssnapshot/internal/tokenizer"
	"github.com/temirov/cssnapshot/internal/tree"
	"github.com/temirov/cssnapshot/internal/utils"
)

const (
	rootUse              = "cssnapshot <project-root>"
	rootShortDescription = "write a markdown snapshot of a C# project"
	rootLongDescription  = `cssnapshot writes ` + utils.ReportFileName + ` into the project root.
The snapshot holds the filtered directory tree and, for every .cs file, its type declarations with
constructor and method signatures. Use --entities to list fields and properties of a model directory.`
	rootUsageExample = `  # Snapshot a solution directory
  cssnapshot ./MySolution

  # Add detailed listings for the domain model and honor .gitignore
  cssnapshot ./MySolution --entities src/Domain --gitignore

  # Replace the ignored directory names
  cssnapshot ./MySolution --filter 'bin|obj|Migrations'`

	configFlagName           = "config"
	versionFlagName          = "version"
	entitiesFlagDescription  = "directory listed again with fields and properties; relative to the project root"
	filterFlagDescription    = "case-insensitive alternation of ignored path segment names"
	configFlagDescription    = "read options from this YAML, TOML or JSON file"
	gitignoreFlagDescription = "also skip paths matched by the project .gitignore"
	copyFlagDescription      = "copy the snapshot to the clipboard"
	tokensFlagDescription    = "log a token estimate of the snapshot"
	modelFlagDescription     = "tokenizer model to use for token counting"
	verboseFlagDescription   = "log every report stage"
	versionFlagDescription   = "display application version"
	versionTemplate          = "cssnapshot version: %s\n"

	missingArgumentMessage   = "no project root given; nothing to do"
	missingRootMessage       = "project root does not exist; nothing to do"
	tokenizerSelectedMessage = "tokenizer selected"
	projectRootFieldName     = "root"
	encodingFieldName        = "encoding"
	modelFieldName           = "model"

	errorInvalidFilterFormat = "invalid --filter: %w"
	errorParserFormat        = "initialize C# parser: %w"
	errorTokenizerFormat     = "initialize tokenizer: %w"
	errorGitignoreFormat     = "load gitignore rules: %w"
	errorVerboseLoggerFormat = "initialize verbose logger: %w"
)

// dependencies are the collaborators of a run, replaceable in tests.
type dependencies struct {
	logger     *zap.Logger
	newParser  func() (report.Parser, error)
	newCounter func(model string) (tokenizer.Counter, string, error)
	newCopier  func() clipboard.Copier
	newLogger  func(verbose bool) (*zap.Logger, error)
}

func defaultDependencies(logger *zap.Logger) dependencies {
	return dependencies{
		logger: logger,
		newParser: func() (report.Parser, error) {
			csharpParser, creationError := parser.NewCSharpParser()
			if creationError != nil {
				return nil, creationError
			}
			return csharpParser, nil
		},
		newCounter: func(model string) (tokenizer.Counter, string, error) {
			return tokenizer.NewCounter(tokenizer.Config{Model: model})
		},
		newCopier: func() clipboard.Copier {
			return clipboard.NewService()
		},
		newLogger: utils.NewApplicationLogger,
	}
}

// Execute runs the cssnapshot application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(defaultDependencies(logger))
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// commandFlags holds the values bound to the root command flags.
type commandFlags struct {
	entities    string
	filter      string
	configPath  string
	gitignore   bool
	copy        bool
	tokens      bool
	model       string
	verbose     bool
	showVersion bool
}

// createRootCommand builds the single cssnapshot command.
func createRootCommand(deps dependencies) *cobra.Command {
	var flags commandFlags

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flags.showVersion {
				_, printError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return printError
			}
			if len(arguments) == 0 {
				deps.logger.Warn(missingArgumentMessage)
				return nil
			}
			options, loadError := config.Load(command.Flags(), flags.configPath)
			if loadError != nil {
				return loadError
			}
			return runSnapshot(deps, arguments[0], options)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringVar(&flags.entities, config.KeyEntities, "", entitiesFlagDescription)
	flagSet.StringVar(&flags.filter, config.KeyFilter, filter.DefaultPattern, filterFlagDescription)
	flagSet.StringVar(&flags.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&flags.model, config.KeyModel, tokenizer.DefaultModel, modelFlagDescription)
	registerBooleanFlag(flagSet, &flags.gitignore, config.KeyGitignore, false, gitignoreFlagDescription)
	registerBooleanFlag(flagSet, &flags.copy, config.KeyCopy, false, copyFlagDescription)
	registerBooleanFlag(flagSet, &flags.tokens, config.KeyTokens, false, tokensFlagDescription)
	registerBooleanFlag(flagSet, &flags.verbose, config.KeyVerbose, false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &flags.showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// runSnapshot wires the collaborators selected by options and generates the report for projectRoot.
func runSnapshot(deps dependencies, projectRoot string, options config.Options) error {
	logger := deps.logger
	if options.Verbose && deps.newLogger != nil {
		verboseLogger, loggerError := deps.newLogger(true)
		if loggerError != nil {
			return fmt.Errorf(errorVerboseLoggerFormat, loggerError)
		}
		defer func() { _ = verboseLogger.Sync() }()
		logger = verboseLogger
	}

	segmentFilter, filterError := filter.New(options.Filter)
	if filterError != nil {
		return fmt.Errorf(errorInvalidFilterFormat, filterError)
	}

	var matcher tree.PathMatcher
	if options.Gitignore {
		gitignoreMatcher, gitignoreError := config.LoadGitignoreMatcher(projectRoot)
		if gitignoreError != nil {
			return fmt.Errorf(errorGitignoreFormat, gitignoreError)
		}
		matcher = gitignoreMatcher
	}

	sourceParser, parserError := deps.newParser()
	if parserError != nil {
		return fmt.Errorf(errorParserFormat, parserError)
	}
	assembler := report.NewAssembler(sourceParser, logger)
	if options.Tokens {
		counter, encodingName, counterError := deps.newCounter(options.Model)
		if counterError != nil {
			return fmt.Errorf(errorTokenizerFormat, counterError)
		}
		logger.Debug(tokenizerSelectedMessage, zap.String(modelFieldName, options.Model), zap.String(encodingFieldName, encodingName))
		assembler.Counter = counter
	}
	if options.Copy {
		assembler.Copier = deps.newCopier()
	}

	_, generateError := assembler.Generate(report.Options{
		RootDirectory:     projectRoot,
		EntitiesDirectory: options.Entities,
		Filter:            segmentFilter,
		Matcher:           matcher,
	})
	if errors.Is(generateError, report.ErrRootMissing) {
		logger.Warn(missingRootMessage, zap.String(projectRootFieldName, projectRoot))
		return nil
	}
	return generateError
}
