package main

import (
	"fmt"
	"strings"
)

// flagArg splits "--name=value" and "--name value" forms. It returns the
// flag name, its value and the index of the last consumed argument.
func flagArg(args []string, i int, needsValue bool) (string, string, int, error) {
	name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
	if !needsValue || hasValue {
		return name, value, i, nil
	}
	if i+1 >= len(args) {
		return name, "", i, fmt.Errorf("flag --%s needs a value", name)
	}
	return name, args[i+1], i + 1, nil
}

func flagName(arg string) string {
	name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-") && len(arg) > 1
}
