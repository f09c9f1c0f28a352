package options

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/prompt"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		`Skip the confirmation prompt.`)
}

// Prompter asks on the terminal unless --yes was given.
func (o *ConfirmOptions) Prompter(cmd *cobra.Command) prompt.Prompter {
	return &prompt.Terminal{
		In:  os.Stdin,
		Out: cmd.ErrOrStderr(),
		Yes: o.Yes,
	}
}
