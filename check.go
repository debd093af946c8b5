package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karanbhatia-svg/portfolio/internal/config"
	"github.com/karanbhatia-svg/portfolio/internal/content"
	"github.com/karanbhatia-svg/portfolio/internal/resume"
)

// newCheckCmd validates the content document and reports which resume
// candidate a page render would pick up.
func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate content and report the resume that would be served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "content: %s, %d projects\n", portfolio.Profile.Name, len(portfolio.Projects))

			f, found, err := resume.NewLocator(os.DirFS(cfg.ResumeRoot), cfg.ResumeCandidates).Locate()
			switch {
			case err != nil:
				fmt.Fprintf(out, "resume: unreadable: %v\n", err)
			case !found:
				fmt.Fprintf(out, "resume: none of %s found, download hidden\n", strings.Join(cfg.ResumeCandidates, ", "))
			default:
				info := resume.Inspect(f)
				fmt.Fprintf(out, "resume: %s (%s, %d bytes", f.Path, info.MIME, len(f.Data))
				if info.Pages > 0 {
					fmt.Fprintf(out, ", %d pages", info.Pages)
				}
				fmt.Fprintln(out, ")")
			}
			return nil
		},
	}
}
