package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/internal/version"
)

func newVersionCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			if format := v.GetString("output"); format != formatText {
				return encode(cmd.OutOrStdout(), format, info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
}
