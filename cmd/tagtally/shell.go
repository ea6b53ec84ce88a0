package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const shellPrompt = "Enter a #hashtag you want to search, or 'exit' to quit: "

func newShellCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactively search hashtags (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, gf)
		},
	}
}

func runShell(cmd *cobra.Command, gf *globalFlags) error {
	a, err := newApp(cmd.Context(), gf)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.shell(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
}

// shell reads hashtags until "exit" or end of input. A failed lookup is
// reported and the loop continues with the next hashtag.
func (a *app) shell(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}

		input := sc.Text()
		if input == "exit" {
			break
		}
		hashtag := normalizeHashtag(input)
		if hashtag == "" {
			continue
		}

		r, err := a.analyze(cmd.Context(), hashtag)
		if err != nil {
			a.log.Error().Err(err).Str("hashtag", hashtag).Msg("search failed")
			continue
		}
		if err := writeReport(out, r, a.cfg.Analysis.TopHashtags, a.cfg.Analysis.TopWords, a.styled); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Fprintln(out, "Bye!")
	return nil
}
