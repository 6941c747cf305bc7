package main

import (
	"github.com/spf13/cobra"

	"github.com/taigrr/flatshade/pkg/viewer"
	"github.com/taigrr/flatshade/pkg/window"
)

func newWindowCmd(gf *globalFlags) *cobra.Command {
	var (
		fps   int
		scale int
	)

	cmd := &cobra.Command{
		Use:   "window <model>",
		Short: "View a model in a desktop window",
		Long:  "View a model in a desktop window.\n\nControls:\n" + viewer.ControlsHelp(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gf.options()
			if err != nil {
				return err
			}
			log := gf.logger(cmd.ErrOrStderr())

			s, err := loadScene(args[0], log)
			if err != nil {
				return err
			}

			v := viewer.New(s, opts, fps)
			return window.Run(cmd.Context(), v, window.Config{
				Title: "flatshade - " + modelName(args[0]),
				Scale: scale,
				FPS:   fps,
			})
		},
	}

	cmd.Flags().IntVar(&fps, "fps", viewer.DefaultFPS, "Target FPS")
	cmd.Flags().IntVar(&scale, "scale", 1, "Window pixels per rendered pixel")
	return cmd
}
