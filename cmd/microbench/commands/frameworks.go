package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/ui/output"
	"go.trai.ch/microbench/internal/ui/style"
)

func (c *CLI) newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List the target frameworks supported on this host",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			renderer := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile(w)))
			channelStyle := renderer.NewStyle().Foreground(style.Mist)

			for _, fw := range domain.SupportedFrameworks(c.goos) {
				channel, ok := domain.FrameworkChannel(fw)
				if !ok {
					channel = "-"
				}
				_, _ = fmt.Fprintf(w, "%-15s %s\n", fw, channelStyle.Render(channel))
			}
		},
	}
}
