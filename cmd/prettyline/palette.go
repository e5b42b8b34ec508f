package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prettyline/internal/config"
	"github.com/alexisbeaulieu97/prettyline/internal/prompt"
	"github.com/alexisbeaulieu97/prettyline/internal/style"
)

type paletteOptions struct {
	yamlOutput bool
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the colors used for each prompt role",
		Long: "Show the colors used for each prompt role, including overrides from " + config.EnvPalette + ".\n\n" +
			"The --yaml output can be edited and exported as " + config.EnvPalette + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			if opts.yamlOutput {
				data, err := config.EncodePalette(app.Palette)
				if err != nil {
					return newCommandError("show palette", "encoding YAML", err, "Report this as a bug.")
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			background, _ := app.Env.Background()
			return renderPaletteSwatches(cmd, app.Palette, background)
		},
	}

	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Print the palette as YAML")

	return cmd
}

func renderPaletteSwatches(cmd *cobra.Command, palette prompt.Palette, background style.Color) error {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
	label := renderer.NewStyle().Width(8).Bold(true)
	muted := renderer.NewStyle().Faint(true)

	var sb strings.Builder
	for _, role := range prompt.Roles() {
		pair := palette.Colors(role)
		swatch := renderer.NewStyle().
			Foreground(lipglossColor(pair.Foreground)).
			Background(lipglossColor(pair.Background)).
			Padding(0, 1).
			Render(role.String())

		sb.WriteString(label.Render(role.String()))
		sb.WriteString(swatch)
		sb.WriteString(" ")
		sb.WriteString(muted.Render(fmt.Sprintf("fg=%s bg=%s", pair.Foreground, pair.Background)))
		sb.WriteString("\n")
	}
	sb.WriteString(label.Render("terminal"))
	sb.WriteString(muted.Render("bg=" + background.String()))
	sb.WriteString("\n")

	_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return err
}

// lipglossColor maps a prompt color onto lipgloss, which takes palette
// indexes as decimal strings and RGB as hex.
func lipglossColor(c style.Color) lipgloss.TerminalColor {
	switch c.Kind() {
	case style.KindNamed, style.KindIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index())))
	case style.KindRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}
