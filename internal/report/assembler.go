// Package report assembles the project snapshot: the filtered directory tree, the structural listing of
// every source file and the optional detailed entity listing, written to one markdown file.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/temirov/cssnapshot/internal/declarations"
	"github.com/temirov/cssnapshot/internal/filter"
	"github.com/temirov/cssnapshot/internal/services/clipboard"
	"github.com/temirov/cssnapshot/internal/tokenizer"
	"github.com/temirov/cssnapshot/internal/tree"
	"github.com/temirov/cssnapshot/internal/types"
	"github.com/temirov/cssnapshot/internal/utils"
)

// ErrRootMissing is returned when the project root does not exist or is not a directory.
var ErrRootMissing = errors.New("project root does not exist")

const (
	errorRootMissingFormat     = "%w: %s"
	errorResolveRootFormat     = "resolve project root %s: %w"
	errorReadSourceFormat      = "read source %s: %w"
	errorParseSourceFormat     = "parse source %s: %w"
	errorStageOrderFormat      = "report stage %s cannot follow %s"
	entitiesMissingMessage     = "entities directory not found; skipping entity details"
	stageMessage               = "report stage"
	reportWrittenMessage       = "report written"
	reportCopiedMessage        = "report copied to clipboard"
	tokenCountFailedMessage    = "token count failed; report kept"
	copyFailedMessage          = "clipboard copy failed; report kept"
	stageFieldName             = "stage"
	pathFieldName              = "path"
	sizeFieldName              = "size"
	filesFieldName             = "files"
	tokensFieldName            = "tokens"
	tokenizerFieldName         = "tokenizer"
	entitiesDirectoryFieldName = "entities"
	parentDirectoryPrefix      = "../"
	pathSeparator              = "/"
)

// Parser turns the text of one source file into its declaration model.
type Parser interface {
	Parse(relativePath string, source []byte) (types.ParsedSource, error)
}

// Options are the per-run inputs of a report.
type Options struct {
	// RootDirectory is the project root; the report is written inside it.
	RootDirectory string
	// EntitiesDirectory is listed again in detailed mode when set and present. Relative paths resolve against RootDirectory.
	EntitiesDirectory string
	// Filter removes ignored path segments. A nil Filter uses filter.DefaultPattern.
	Filter *filter.Filter
	// Matcher optionally prunes additional paths, such as those listed in .gitignore.
	Matcher tree.PathMatcher
}

// Result describes a written report.
type Result struct {
	OutputPath string
	Size       int
	Tokens     tokenizer.CountResult
}

// Assembler produces reports. Counter and Copier are optional and used only when set.
type Assembler struct {
	parser  Parser
	logger  *zap.Logger
	Counter tokenizer.Counter
	Copier  clipboard.Copier
}

// NewAssembler constructs an Assembler that parses sources with parser and logs through logger.
func NewAssembler(parser Parser, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{parser: parser, logger: logger}
}

// run holds the state of one report generation.
type run struct {
	assembler *Assembler
	stage     Stage
	sections  []Section
}

func (currentRun *run) advance(next Stage) error {
	if next <= currentRun.stage {
		return fmt.Errorf(errorStageOrderFormat, next, currentRun.stage)
	}
	currentRun.stage = next
	currentRun.assembler.logger.Debug(stageMessage, zap.String(stageFieldName, next.String()))
	return nil
}

// Generate runs the full sequence: validate the root, render the tree, list every source file, optionally
// list the entities directory in detailed mode, then write the report atomically.
func (assembler *Assembler) Generate(options Options) (Result, error) {
	rootDirectory, rootError := validateRoot(options.RootDirectory)
	if rootError != nil {
		return Result{}, rootError
	}
	segmentFilter := options.Filter
	if segmentFilter == nil {
		defaultFilter, filterError := filter.New(filter.DefaultPattern)
		if filterError != nil {
			return Result{}, filterError
		}
		segmentFilter = defaultFilter
	}
	scanOptions := tree.ScanOptions{Filter: segmentFilter, Matcher: options.Matcher}
	currentRun := &run{assembler: assembler, stage: StageInit}

	snapshot, scanError := tree.Scan(rootDirectory, scanOptions)
	if scanError != nil {
		return Result{}, scanError
	}
	currentRun.sections = append(currentRun.sections, Section{Heading: StructureHeading, Level: 1, Body: tree.Render(snapshot, segmentFilter)})
	if stageError := currentRun.advance(StageTreeRendered); stageError != nil {
		return Result{}, stageError
	}

	structuralBody, structuralError := assembler.listDirectory(rootDirectory, rootDirectory, scanOptions, false)
	if structuralError != nil {
		return Result{}, structuralError
	}
	currentRun.sections = append(currentRun.sections, Section{Heading: DeclarationsHeading, Level: 2, Body: structuralBody})
	if stageError := currentRun.advance(StageStructuralListed); stageError != nil {
		return Result{}, stageError
	}

	if entitiesDirectory, present := resolveEntities(rootDirectory, options.EntitiesDirectory, assembler.logger); present {
		detailedBody, detailedError := assembler.listDirectory(rootDirectory, entitiesDirectory, scanOptions, true)
		if detailedError != nil {
			return Result{}, detailedError
		}
		currentRun.sections = append(currentRun.sections, Section{Heading: EntitiesHeading, Level: 3, Body: detailedBody})
		if stageError := currentRun.advance(StageDetailedListed); stageError != nil {
			return Result{}, stageError
		}
	}

	content := Join(currentRun.sections)
	outputPath := filepath.Join(rootDirectory, utils.ReportFileName)
	if writeError := writeAtomically(outputPath, []byte(content)); writeError != nil {
		return Result{}, writeError
	}
	if stageError := currentRun.advance(StageWritten); stageError != nil {
		return Result{}, stageError
	}

	result := Result{OutputPath: outputPath, Size: len(content)}
	assembler.finish(content, &result)
	return result, nil
}

// finish applies the optional token count and clipboard copy and logs the completed report.
// The report is already written, so a failing hook is logged as a warning and never fails the run.
func (assembler *Assembler) finish(content string, result *Result) {
	fields := []zap.Field{
		zap.String(pathFieldName, result.OutputPath),
		zap.String(sizeFieldName, humanize.Bytes(uint64(result.Size))),
	}
	if assembler.Counter != nil {
		countResult, countError := tokenizer.CountText(assembler.Counter, content)
		if countError != nil {
			assembler.logger.Warn(tokenCountFailedMessage, zap.Error(countError))
		} else {
			result.Tokens = countResult
			if countResult.Counted {
				fields = append(fields, zap.Int(tokensFieldName, countResult.Tokens), zap.String(tokenizerFieldName, assembler.Counter.Name()))
			}
		}
	}
	assembler.logger.Info(reportWrittenMessage, fields...)

	if assembler.Copier != nil {
		if copyError := assembler.Copier.Copy(content); copyError != nil {
			assembler.logger.Warn(copyFailedMessage, zap.Error(copyError))
			return
		}
		assembler.logger.Info(reportCopiedMessage)
	}
}

// listDirectory extracts every kept source file under directoryPath. Block headers name files relative to rootDirectory.
func (assembler *Assembler) listDirectory(rootDirectory string, directoryPath string, scanOptions tree.ScanOptions, detailed bool) (string, error) {
	relativePaths, collectError := tree.CollectSourceFiles(directoryPath, scanOptions)
	if collectError != nil {
		return "", collectError
	}
	assembler.logger.Debug(stageMessage, zap.String(pathFieldName, directoryPath), zap.Int(filesFieldName, len(relativePaths)))

	blocks := make([]string, 0, len(relativePaths))
	for _, relativePath := range relativePaths {
		absolutePath := filepath.Join(directoryPath, filepath.FromSlash(relativePath))
		displayPath := utils.RelativePathOrSelf(absolutePath, rootDirectory)
		if ignoredFromRoot(rootDirectory, displayPath, scanOptions) {
			continue
		}
		sourceBytes, readError := os.ReadFile(absolutePath)
		if readError != nil {
			return "", fmt.Errorf(errorReadSourceFormat, absolutePath, readError)
		}
		parsed, parseError := assembler.parser.Parse(displayPath, sourceBytes)
		if parseError != nil {
			return "", fmt.Errorf(errorParseSourceFormat, displayPath, parseError)
		}
		parsed.RelativePath = displayPath
		blocks = append(blocks, declarations.Extract(parsed, detailed))
	}
	return strings.Join(blocks, blockSeparator), nil
}

// ignoredFromRoot reports whether any segment of displayPath, taken from the project root, is excluded.
// This covers the directories between the root and a nested entities directory, which the walk itself never visits.
func ignoredFromRoot(rootDirectory string, displayPath string, scanOptions tree.ScanOptions) bool {
	if scanOptions.Filter.IsPathIgnored(displayPath) {
		return true
	}
	if scanOptions.Matcher == nil || strings.HasPrefix(displayPath, parentDirectoryPrefix) {
		return false
	}
	segments := strings.Split(displayPath, pathSeparator)
	for index := 1; index < len(segments); index++ {
		ancestorPath := filepath.Join(rootDirectory, filepath.FromSlash(strings.Join(segments[:index], pathSeparator)))
		if scanOptions.Matcher.Match(ancestorPath, true) {
			return true
		}
	}
	return false
}

func validateRoot(rootDirectory string) (string, error) {
	absoluteRoot, absoluteError := filepath.Abs(rootDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf(errorResolveRootFormat, rootDirectory, absoluteError)
	}
	info, statError := os.Stat(absoluteRoot)
	if statError != nil || !info.IsDir() {
		return "", fmt.Errorf(errorRootMissingFormat, ErrRootMissing, rootDirectory)
	}
	return absoluteRoot, nil
}

// resolveEntities returns the absolute entities directory and whether it should be listed.
func resolveEntities(rootDirectory string, entitiesDirectory string, logger *zap.Logger) (string, bool) {
	if strings.TrimSpace(entitiesDirectory) == "" {
		return "", false
	}
	resolved := entitiesDirectory
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(rootDirectory, resolved)
	}
	info, statError := os.Stat(resolved)
	if statError != nil || !info.IsDir() {
		logger.Warn(entitiesMissingMessage, zap.String(entitiesDirectoryFieldName, entitiesDirectory))
		return "", false
	}
	return resolved, true
}
