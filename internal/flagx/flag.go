// Package flagx lets several independent flag sets share one command line.
// Each layer picks out only the flags it owns, so the config file flag,
// the server flags and a subcommand name can appear in any order.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// splitFlag reports whether arg is a flag and, for the -name=value form,
// returns the name part.
func splitFlag(arg string) (name string, inline bool, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	if n, _, found := strings.Cut(arg, "="); found {
		return n, true, true
	}
	return arg, false, true
}

// takesValue reports whether args[i+1] is the value of the flag at args[i].
func takesValue(args []string, i int) bool {
	return i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
}

// FilterArgs keeps the flags named in allowedFlags, with their values, and
// drops everything else. Both "-c conf.json" and "-c=conf.json" are
// recognised; a token starting with "-" is never taken as a value.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, inline, ok := splitFlag(args[i])
		if !ok || !allowed[name] {
			continue
		}
		filtered = append(filtered, args[i])
		if !inline && takesValue(args, i) {
			i++
			filtered = append(filtered, args[i])
		}
	}

	return filtered
}

// Positional returns the arguments that are neither flags nor the value of
// a preceding "-flag value" pair, e.g. the subcommand of cmd/admin.
// Every separate-form flag is assumed to take a value.
func Positional(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		_, inline, ok := splitFlag(args[i])
		if !ok {
			out = append(out, args[i])
			continue
		}
		if !inline && takesValue(args, i) {
			i++
		}
	}
	return out
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present. When both appear the last one wins.
func JsonConfigFlags() string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return config
}
