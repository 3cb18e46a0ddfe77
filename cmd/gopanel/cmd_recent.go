package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sadopc/gopanel/internal/history"
)

func openHistory(f *rootFlags) (*history.Store, error) {
	path := f.historyPath
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return history.NewStore(path)
}

func newRecentCmd(f *rootFlags) *cobra.Command {
	var (
		limit    int
		search   string
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files",
		Long: `List the files gopanel opened most recently.

Examples:
  gopanel recent
  gopanel recent --search notes
  gopanel recent --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(f)
			if err != nil {
				return err
			}
			defer store.Close()

			if clearAll {
				if err := store.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}

			var entries []history.Entry
			if search != "" {
				entries, err = store.Search(search)
			} else {
				entries, err = store.Recent(limit)
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files opened yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%dx\t%s\n",
					humanize.Time(e.LastOpened), humanize.IBytes(uint64(e.Size)), e.Kind, e.Opens, e.Path)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of files to list")
	cmd.Flags().StringVar(&search, "search", "", "only list paths containing this text")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget all recent files")
	return cmd
}
