package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/persist"
	"tableflip.dev/memo/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(memo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(memo completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			}
			return fmt.Errorf("unsupported shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

// categoryCompletions reads the store without starting a session, so
// completing a word never writes.
func categoryCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	st := persist.New(p, persist.WithLogger(zap.NewNop())).Load(time.Now)
	return matchCategories(st, toComplete)
}

func matchCategories(st app.State, toComplete string) []string {
	var cs []string
	for _, c := range st.Categories() {
		if strings.HasPrefix(c, toComplete) {
			cs = append(cs, strconv.Quote(c))
		}
	}
	return cs
}
