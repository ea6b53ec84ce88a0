package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pario-ai/tagtally/pkg/history"
)

func newHistoryCmd(gf *globalFlags) *cobra.Command {
	var (
		summary bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past hashtag lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(gf)
			if err != nil {
				return err
			}
			if !cfg.History {
				return errors.New("history is disabled in config")
			}

			h, err := history.New(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if summary {
				sums, err := h.Summary(ctx)
				if err != nil {
					return err
				}
				if len(sums) == 0 {
					fmt.Fprintln(out, "No lookups recorded.")
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "HASHTAG\tLOOKUPS\tHITS\tMISSES")
				for _, s := range sums {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", s.Hashtag, s.Lookups, s.Hits, s.Misses)
				}
				return w.Flush()
			}

			recs, err := h.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(out, "No lookups recorded.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tHASHTAG\tRESULT")
			for _, r := range recs {
				result := "miss"
				if r.Hit {
					result = "hit"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02T15:04:05"), r.Hashtag, result)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "aggregate lookups per hashtag")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of recent lookups to show")
	return cmd
}
