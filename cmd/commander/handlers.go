package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/io-da/commander"
)

// newRegistry builds the demo command set from two registries.
// The math registry is merged in without suffixing, so core commands win collisions.
func newRegistry(out io.Writer) *commander.Registry {
	core := commander.NewRegistry().
		RegisterMany([]string{"echo", "print"}, commander.HandlerFunc(func(args []string) {
			fmt.Fprintln(out, strings.Join(args, " "))
		})).
		Register("count", commander.HandlerFunc(func(args []string) {
			fmt.Fprintln(out, len(args))
		}))

	math := commander.NewRegistry().
		Register("sum", commander.HandlerFunc(func(args []string) {
			fmt.Fprintln(out, sum(args))
		})).
		Register("count", commander.HandlerFunc(func(args []string) {
			fmt.Fprintln(out, "count is owned by the core commands")
		}))

	return core.MergeInto(math, false)
}

// sum adds the integer arguments; arguments that are not integers are reported and skipped.
func sum(args []string) string {
	total := 0
	var skipped []string
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			skipped = append(skipped, arg)
			continue
		}
		total += n
	}
	if len(skipped) > 0 {
		return fmt.Sprintf("%d (skipped %s)", total, strings.Join(skipped, ", "))
	}
	return strconv.Itoa(total)
}
