package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/genhub/pkg/fsutil"
	"github.com/glorpus-work/genhub/pkg/hooks"
	"github.com/spf13/cobra"
)

// NewHookCmd creates the hook command.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Work with lifecycle hook scripts",
		Long: `Lifecycle hooks are Tengo scripts that run after a generator is installed,
uninstalled or updated. Configure their paths under hooks in the config file.`,
	}

	cmd.AddCommand(newHookTemplateCmd())
	return cmd
}

func newHookTemplateCmd() *cobra.Command {
	var (
		outputFile string
		force      bool
	)

	cmd := &cobra.Command{
		Use:       "template TYPE",
		Short:     "Print a hook script template",
		Args:      cobra.ExactArgs(1),
		ValidArgs: hookTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			hookType := hooks.HookType(args[0])
			if !hooks.ValidHookType(hookType) {
				return hooks.ErrUnsupportedHookEvent(args[0])
			}

			template := hooks.HookTemplate(hookType)
			if outputFile == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), template)
				return err
			}

			absOutputFile, err := filepath.Abs(outputFile)
			if err != nil {
				return fmt.Errorf("invalid output file: %w", err)
			}
			if _, err := os.Stat(absOutputFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", absOutputFile)
			}
			if err := fsutil.EnsureFileDir(absOutputFile); err != nil {
				return err
			}
			if err := os.WriteFile(absOutputFile, []byte(template), fsutil.FileModeDefault); err != nil {
				return fmt.Errorf("failed to write hook template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s hook template to %s\n", hookType, absOutputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "Write the template to a file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")

	cmd.Example = `  # Print the post-install template
  genhub hook template post-install

  # Write it next to the config and enable it
  genhub hook template post-install -f ~/.config/genhub/post-install.tengo
  genhub config set hooks.post_install ~/.config/genhub/post-install.tengo`

	return cmd
}

func hookTypeNames() []string {
	names := make([]string, 0, len(hooks.HookTypes))
	for _, t := range hooks.HookTypes {
		names = append(names, string(t))
	}
	return names
}
