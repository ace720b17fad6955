package main

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// interspersedArgs moves options given after SOURCE in front of it, so
// `prepareclips SOURCE -s` parses like `prepareclips -s SOURCE`. A literal
// "--" ends option handling and everything after it stays positional.
func interspersedArgs(flags []cli.Flag, args []string) []string {
	if len(args) == 0 {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			takesValue[name] = true
		}
	}

	var options, positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		options = append(options, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			options = append(options, rest[i])
		}
	}

	out := append([]string{args[0]}, options...)
	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}
