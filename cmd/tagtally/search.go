package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func newSearchCmd(gf *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <hashtag>",
		Short: "Search one hashtag and print co-occurring hashtags and words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashtag := normalizeHashtag(args[0])
			if hashtag == "" {
				return errors.New("hashtag must not be empty")
			}

			a, err := newApp(cmd.Context(), gf)
			if err != nil {
				return err
			}
			defer a.Close()

			r, err := a.analyze(cmd.Context(), hashtag)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			return writeReport(cmd.OutOrStdout(), r, a.cfg.Analysis.TopHashtags, a.cfg.Analysis.TopWords, a.styled)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rankings as JSON")
	return cmd
}
