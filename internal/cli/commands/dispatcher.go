package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Коды выхода pfctl.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
	// ExitDenied — сервер ответил 401: нет логина, токен перевыпущен или не хватает поля.
	ExitDenied = 3
)

// Dispatch is the single entry point to execute pfctl commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage(cfg))
			return ExitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage(cfg))
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // pfctl help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage(cfg))
			return ExitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n%s\n", c.Usage(), c.Description())
			return ExitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage(cfg))
		return ExitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage(cfg))
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	var se *api.StatusError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	case errors.As(err, &se):
		fmt.Fprintf(Out, "%s: %s (HTTP %d)\n", name, se.Message, se.Code)
		if se.Code == http.StatusUnauthorized {
			return ExitDenied
		}
		return ExitFailed
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitFailed
	}
}
