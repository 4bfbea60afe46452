package cli

import (
	"todopanes/internal/layout"

	"github.com/spf13/cobra"
)

type layoutBounds struct {
	TopMin     float64 `json:"topMin"`
	MaxSection float64 `json:"maxSection"`
	BottomMin  float64 `json:"bottomMin"`
	Total      float64 `json:"total"`
	Gaps       float64 `json:"gaps"`
}

type layoutSplit struct {
	DY         float64 `json:"dy"`
	Top        float64 `json:"top"`
	Bottom     float64 `json:"bottom"`
	TopRows    int     `json:"topRows"`
	BottomRows int     `json:"bottomRows"`
}

type layoutReport struct {
	Metrics string        `json:"metrics"`
	Height  float64       `json:"height"`
	Bounds  layoutBounds  `json:"bounds"`
	Default layoutSplit   `json:"default"`
	Drags   []layoutSplit `json:"drags"`
}

func newLayoutCmd(app *App) *cobra.Command {
	var (
		height float64
		drags  []float64
		phone  bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the split geometry for a screen height",
		Long: `Prints the clamping bounds and the resting split for --height, then the split
after each --drag. Every --drag is a separate gesture that starts where the
previous one ended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if height <= 0 {
				return errFlag("height", "must be positive")
			}
			m, name := layout.TerminalMetrics, "terminal"
			if phone {
				m, name = layout.PhoneMetrics, "phone"
			}
			b := layout.NewBounds(height, m)
			s := layout.NewSplit(b)

			report := layoutReport{
				Metrics: name,
				Height:  height,
				Bounds: layoutBounds{
					TopMin:     b.TopMin,
					MaxSection: b.MaxSection,
					BottomMin:  b.BottomMin,
					Total:      b.Total,
					Gaps:       b.Gaps,
				},
				Default: splitReport(s, 0),
				Drags:   []layoutSplit{},
			}
			for _, dy := range drags {
				s.Start()
				s.Move(dy)
				s.End()
				report.Drags = append(report.Drags, splitReport(s, dy))
			}
			return writeOut(cmd, app, map[string]any{"data": report})
		},
	}

	cmd.Flags().Float64Var(&height, "height", 0, "Screen height (rows, or points with --phone)")
	cmd.Flags().Float64SliceVar(&drags, "drag", nil, "Vertical drag displacement; repeat for several gestures")
	cmd.Flags().BoolVar(&phone, "phone", false, "Use the phone point metrics instead of terminal rows")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func splitReport(s layout.Split, dy float64) layoutSplit {
	top, bottom := s.Rows()
	return layoutSplit{
		DY:         dy,
		Top:        s.Top(),
		Bottom:     s.Bottom(),
		TopRows:    top,
		BottomRows: bottom,
	}
}
