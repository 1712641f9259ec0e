package cmd

import (
	"fmt"
	"strings"

	"github.com/wayfare-dev/pathkit/queue"
)

func parseVariant(s string) (queue.Variant, error) {
	switch strings.ToLower(s) {
	case "binary", "":
		return queue.Binary, nil
	case "fibonacci":
		return queue.Fibonacci, nil
	case "radix":
		return queue.Radix, nil
	default:
		return 0, fmt.Errorf("pathbench: unknown queue variant %q", s)
	}
}
