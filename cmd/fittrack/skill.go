// ABOUTME: CLI command that installs the bundled agent skill definition.
// ABOUTME: The target directory comes from --dir, skill_dir config, or CLAUDE_CONFIG_DIR.
package main

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var (
	skillSkipConfirm bool
	skillDir         string
	skillPrint       bool
)

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the fittrack agent skill",
	Long: `Install the fittrack skill so coding agents can drive the CLI.

SKILL.md is written to the first of:

  --dir flag
  skill_dir in config.json (or FITTRACK_SKILL_DIR)
  $CLAUDE_CONFIG_DIR/skills/fittrack
  ~/.claude/skills/fittrack

Use --print to write the skill to stdout instead.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSession: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := skillFS.ReadFile("skill/SKILL.md")
		if err != nil {
			return fmt.Errorf("failed to read embedded skill: %w", err)
		}
		if skillPrint {
			_, err := cmd.OutOrStdout().Write(content)
			return err
		}

		dir := skillDir
		if dir == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir = cfg.GetSkillDir()
		}
		return installSkill(dir, content, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	installSkillCmd.Flags().StringVar(&skillDir, "dir", "", "install directory (overrides config)")
	installSkillCmd.Flags().BoolVar(&skillPrint, "print", false, "print the skill instead of installing it")
	rootCmd.AddCommand(installSkillCmd)
}

// installSkill writes content to dir/SKILL.md after a y/N confirmation.
// An identical existing file is left untouched.
func installSkill(dir string, content []byte, in io.Reader, out io.Writer) error {
	path := filepath.Join(dir, "SKILL.md")

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		_, _ = fmt.Fprintf(out, "fittrack skill is already up to date at %s\n", path)
		return nil
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to read existing skill: %w", err)
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(out, "FitTrack agent skill")
	_, _ = fmt.Fprintln(out, "Lets an agent log exercises, meals and water, check goals and")
	_, _ = fmt.Fprintln(out, "browse the activity calendar through the fittrack CLI.")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Destination: %s\n", path)
	if err == nil {
		_, _ = color.New(color.FgYellow).Fprintln(out, "An older skill file exists and will be replaced.")
	}
	_, _ = fmt.Fprintln(out)

	if !skillSkipConfirm {
		_, _ = fmt.Fprint(out, "Install the fittrack skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && response == "" {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			_, _ = fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	_, _ = color.New(color.FgGreen).Fprintf(out, "✓ Installed fittrack skill to %s\n", path)
	return nil
}
