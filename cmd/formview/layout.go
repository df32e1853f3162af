package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
	"github.com/goliatone/go-formview/pkg/widgets/web"
)

type placementView struct {
	Row    int         `json:"row"`
	Index  int         `json:"index"`
	Label  string      `json:"label,omitempty"`
	Spacer bool        `json:"spacer,omitempty"`
	Frame  layout.Rect `json:"frame"`
}

func newLayoutCmd(g *globals) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed frames of the user form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				configFile = g.cfg.LayoutFile
			}
			cfg, err := loadLayout(configFile, layout.DefaultConfig())
			if err != nil {
				return err
			}
			f := buildPerson(web.Factory{}, form.WithStrict(g.cfg.Strict), form.WithLogger(logger))

			placements := layout.Compute(f.LayoutRows(), g.cfg.Width, cfg)
			out := make([]placementView, 0, len(placements))
			for _, pl := range placements {
				view := placementView{Row: pl.Row, Index: pl.Index, Spacer: pl.Spacer, Frame: pl.Frame}
				if c, ok := pl.Leaf.(web.Controller); ok {
					view.Label = c.Control().Label
				}
				out = append(out, view)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Width      int             `json:"width"`
				Height     int             `json:"height"`
				Placements []placementView `json:"placements"`
			}{g.cfg.Width, layout.Height(placements, cfg), out})
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "layout config file (JSON or YAML)")
	return cmd
}
