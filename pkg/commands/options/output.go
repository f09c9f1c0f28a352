package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	ShowID bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func AddShowIDArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVarP(&po.ShowID, "show-id", "k", false,
		"Show the ID of each memo.")
}

// HandleError prints err as a JSON object when --json is set so scripted
// callers always get parseable output.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
