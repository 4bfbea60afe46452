package cli

import (
	"todopanes/internal/model"

	"github.com/spf13/cobra"
)

func newPaletteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the list colors and icons offered by the list editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"colors":      model.ListColors,
					"icons":       model.ListIcons,
					"defaultList": model.DefaultList(),
					"newListIcon": model.NewListIcon,
				},
			})
		},
	}
}
