package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
)

func newFetchCommand(v *viper.Viper) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the raw page documents",
		Long:  "Run the page query against the content store and print the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if section != "" && !slices.Contains(content.SectionNames, section) {
				return fmt.Errorf("unknown section %q", section)
			}

			svc, err := contentService(appConfig(v), newLogger(cmd, v))
			if err != nil {
				return err
			}
			raw, err := svc.Raw(cmd.Context())
			if err != nil {
				return err
			}

			format := v.GetString("output")
			if format == formatText {
				format = formatJSON
			}
			if section != "" {
				return encode(cmd.OutOrStdout(), format, raw[section])
			}
			return encode(cmd.OutOrStdout(), format, raw)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "print only one document (e.g. hero, banner)")
	return cmd
}
