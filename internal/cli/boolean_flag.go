package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName               = "bool"
	booleanFlagTrueLiteral            = "true"
	booleanFlagAcceptedValuesListing  = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueErrorLabel = "invalid boolean value"

	errorUnboundBooleanFlagFormat = "%s %q for an unbound flag"
	errorInvalidBooleanFlagFormat = "%s %q for --%s; accepted values: %s"
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// booleanFlagValue accepts the literals in booleanFlagLiterals; an empty value means true.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(errorUnboundBooleanFlagFormat, booleanFlagInvalidValueErrorLabel, input)
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = booleanFlagTrueLiteral
	}
	parsed, ok := booleanFlagLiterals[normalized]
	if !ok {
		return fmt.Errorf(errorInvalidBooleanFlagFormat, booleanFlagInvalidValueErrorLabel, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return booleanFlagTrueLiteral
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag defines a boolean flag that may be given bare, with "=value" or followed by a literal.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagValue := &booleanFlagValue{
		target:  target,
		flagKey: name,
	}
	flagSet.Var(flagValue, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments joins a boolean flag with a following literal such as "no" or "off" so that
// "--copy no" parses as "--copy=no". Any other following argument stays positional, so "--copy ./Project"
// enables the flag and keeps the project root.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := collectBooleanFlagNames(command.Flags())
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if literal, joined := joinedBooleanLiteral(booleanFlags, arguments, index); joined {
			normalized = append(normalized, literal)
			index++
			continue
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}

// joinedBooleanLiteral returns "--name=value" when arguments[index] is a boolean flag followed by a boolean literal.
func joinedBooleanLiteral(booleanFlags map[string]struct{}, arguments []string, index int) (string, bool) {
	currentArgument := arguments[index]
	if !strings.HasPrefix(currentArgument, "--") || strings.Contains(currentArgument, "=") || index+1 >= len(arguments) {
		return "", false
	}
	flagName := strings.TrimPrefix(currentArgument, "--")
	if _, exists := booleanFlags[flagName]; !exists {
		return "", false
	}
	nextArgument := arguments[index+1]
	if strings.HasPrefix(nextArgument, "-") {
		return "", false
	}
	if _, valid := booleanFlagLiterals[strings.ToLower(strings.TrimSpace(nextArgument))]; !valid {
		return "", false
	}
	return fmt.Sprintf("--%s=%s", flagName, nextArgument), true
}

func collectBooleanFlagNames(flagSet *pflag.FlagSet) map[string]struct{} {
	names := map[string]struct{}{}
	if flagSet == nil {
		return names
	}
	flagSet.VisitAll(func(flag *pflag.Flag) {
		if flag != nil && flag.Value != nil && flag.Value.Type() == booleanFlagTypeName {
			names[flag.Name] = struct{}{}
		}
	})
	return names
}
