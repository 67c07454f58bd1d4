package npm

import (
	"context"
	"fmt"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/platform"
)

// DefaultCommand returns the npm executable name for the current platform.
func DefaultCommand() string {
	if platform.IsWindows() {
		return "npm.cmd"
	}
	return "npm"
}

// ListCommand builds `npm list <location> --depth=0`.
func ListCommand(npm string, loc Location) Command {
	return Command{Name: npm, Args: append(append([]string{"list"}, loc.Args()...), "--depth=0")}
}

// InstallCommand builds `npm install <location> <name>@latest`.
func InstallCommand(npm string, loc Location, name model.GeneratorName) Command {
	return Command{Name: npm, Args: append(append([]string{"install"}, loc.Args()...), name+"@latest")}
}

// UninstallCommand builds `npm uninstall <location> <name>`.
func UninstallCommand(npm string, loc Location, name model.GeneratorName) Command {
	return Command{Name: npm, Args: append(append([]string{"uninstall"}, loc.Args()...), name)}
}

// Client runs npm commands for generator packages.
type Client struct {
	runner  Runner
	command string
}

// NewClient creates a client running the given npm executable through runner.
// An empty command selects DefaultCommand.
func NewClient(runner Runner, command string) *Client {
	if command == "" {
		command = DefaultCommand()
	}
	return &Client{runner: runner, command: command}
}

// ListInstalled returns the generator names installed at loc. A failing listing is
// not an error: whatever stdout npm produced is still parsed, so the result may be
// empty or partial.
func (c *Client) ListInstalled(ctx context.Context, loc Location) []model.GeneratorName {
	return ParseListing(c.list(ctx, loc))
}

// ListInstalledVersions is ListInstalled with the versions npm reported.
func (c *Client) ListInstalledVersions(ctx context.Context, loc Location) []model.InstalledGenerator {
	return ParseInstalled(c.list(ctx, loc))
}

func (c *Client) list(ctx context.Context, loc Location) string {
	cmd := ListCommand(c.command, loc)
	out, err := c.runner.Run(ctx, cmd)
	if err != nil {
		logger.Debug("npm list exited with an error; using captured output", logger.Fields{
			"command": cmd.String(),
			"error":   err.Error(),
		})
	}
	return out.Stdout
}

// Install installs the latest version of name at loc.
func (c *Client) Install(ctx context.Context, loc Location, name model.GeneratorName) error {
	cmd := InstallCommand(c.command, loc, name)
	if _, err := c.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInstallFailed, err)
	}
	return nil
}

// Uninstall removes name from loc.
func (c *Client) Uninstall(ctx context.Context, loc Location, name model.GeneratorName) error {
	cmd := UninstallCommand(c.command, loc, name)
	if _, err := c.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUninstallFailed, err)
	}
	return nil
}
