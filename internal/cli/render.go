package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/logger"
)

func newRenderCommand(v *viper.Viper) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page to static HTML",
		Long: `Fetch the page documents, resolve defaults and write the full HTML
document. Without --out the page is written to stdout. An unreachable content
store renders the default page unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appConfig(v)
			log := newLogger(cmd, v)

			svc, err := contentService(cfg, log)
			if err != nil {
				return err
			}

			doc, err := svc.Page(cmd.Context())
			if err != nil {
				if cfg.Content.Strict {
					return err
				}
				log.Warn("rendering default content", logger.Error(err))
				doc = nil
			}

			view := page.Resolve(doc, page.SiteInfo{
				Title:         cfg.Site.Title,
				Description:   cfg.Site.Description,
				CopyrightYear: cfg.Site.CopyrightYear,
			})

			if outPath == "" {
				return page.Render(cmd.OutOrStdout(), view)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := page.Render(f, view); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to render page: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write the page to this file")
	cmd.Flags().Bool("strict", false, "fail instead of rendering defaults when content is unavailable")
	_ = v.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}
