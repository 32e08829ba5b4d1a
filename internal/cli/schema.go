package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/domain/schema"
)

func newSchemaCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [type]",
		Short: "Show the content schema",
		Long: `List the document types editable in the studio, or the fields and
validation rules of one type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := schema.NewRegistry()
			out := cmd.OutOrStdout()
			format := v.GetString("output")

			if len(args) == 0 {
				if format != formatText {
					return encode(out, format, reg.Types())
				}
				table := tablewriter.NewWriter(out)
				table.Header("Type", "Title", "Fields", "Rules")
				for _, t := range reg.Types() {
					table.Append(t.Name, t.Title, strconv.Itoa(len(t.Fields)), strconv.Itoa(len(schema.RulesFor(t.Name))))
				}
				return table.Render()
			}

			t, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown document type %q (known: %s)", args[0], strings.Join(reg.Names(), ", "))
			}
			if format != formatText {
				return encode(out, format, t)
			}

			table := tablewriter.NewWriter(out)
			table.Header("Field", "Title", "Type", "Rules")
			for _, f := range t.Fields {
				table.Append(f.Name, f.Title, fieldType(f), fieldRules(t.Name, f.Name))
			}
			return table.Render()
		},
	}
}

func fieldType(f schema.Field) string {
	if f.Type != schema.TypeArray || len(f.Of) == 0 {
		return string(f.Type)
	}
	return fmt.Sprintf("array<%s>", f.Of[0].Type)
}

// fieldRules summarises the rules on a field and on the members of an array field.
func fieldRules(typeName, field string) string {
	var parts []string
	for _, r := range schema.RulesFor(typeName) {
		name := r.Field
		if name != field && !strings.HasPrefix(name, field+"[].") {
			continue
		}
		desc := string(r.Kind)
		if c := r.Constraint(); c != "" {
			desc += " (" + c + ")"
		}
		if name != field {
			desc = strings.TrimPrefix(name, field+"[].") + ": " + desc
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "; ")
}
