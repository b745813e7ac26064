package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/finanflow/internal/logger"
)

// EnvVerbose is set for extensions when -v was given.
const EnvVerbose = "FINANFLOW_VERBOSE"

// RunExtension attempts to find and execute an external ff-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The resolved configuration is passed to the extension as FINANFLOW_*
// environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ff-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Get().Debugw("external command not found", "command", externalCmdName, "error", err)
		return false, 0
	}

	cfg := Settings()
	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvData+"="+cfg.Data,
		EnvStore+"="+cfg.Store,
		EnvCurrency+"="+cfg.Currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
