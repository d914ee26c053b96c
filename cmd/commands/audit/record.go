package audit

import (
	"fmt"
	"time"

	"nathanbeddoewebdev/loopia/internal/auditlog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RunFunc is the signature of a cobra RunE.
type RunFunc func(cmd *cobra.Command, args []string) error

// Tracked wraps run so every invocation is written to the audit log,
// whether it succeeds or not. run may attach auditlog.Metadata to the
// command context. A failure to record is reported on stderr and does not
// change the command's result.
func Tracked(run RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		started := time.Now()
		runErr := run(cmd, args)

		entry := auditlog.NewEntry(cmd.CommandPath(), invocation(cmd, args),
			auditlog.MetadataFromContext(cmd.Context()), started, runErr)
		if err := save(entry); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record audit entry: %v\n", err)
		}
		return runErr
	}
}

func save(entry *auditlog.AuditEntry) error {
	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.Save(entry)
}

// invocation rebuilds the argument list from the positional args and the
// flags that were set explicitly.
func invocation(cmd *cobra.Command, args []string) []string {
	out := append([]string(nil), args...)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		out = append(out, "--"+f.Name, f.Value.String())
	})
	return out
}
