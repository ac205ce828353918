package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptIfEmpty asks for a value on stdin when the flag was left blank.
func promptIfEmpty(cmd *cobra.Command, value, label string) string {
	if value != "" {
		return value
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptPassword reads without echo when stdin is a terminal and falls
// back to a plain read otherwise (pipes, tests).
func promptPassword(cmd *cobra.Command, value, label string) string {
	if value != "" {
		return value
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question, accepting "s"/"sim".
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [s/N] ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "s" || line == "sim"
}
