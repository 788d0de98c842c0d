package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/export"
	"github.com/katalvlaran/lvroute/ingest"
	"github.com/katalvlaran/lvroute/query"
	"github.com/katalvlaran/lvroute/route"
)

func newDistanceCmd(a *app) *cobra.Command {
	var routeText string
	cmd := &cobra.Command{
		Use:   "distance <file>",
		Short: "Total distance along an explicit route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			ans, err := e.Run(cmd.Context(), query.Query{
				Kind:  query.KindDistance,
				Route: route.ParseRoute(routeText),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Result)
			return err
		},
	}
	cmd.Flags().StringVarP(&routeText, "route", "r", "", "Comma-separated vertices, e.g. A,B,C")
	_ = cmd.MarkFlagRequired("route")

	return cmd
}

func newShortestPathCmd(a *app) *cobra.Command {
	var (
		start, end string
		showPath   bool
	)
	cmd := &cobra.Command{
		Use:   "shortest-path <file>",
		Short: "Length of the shortest path between two vertices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			ans, err := e.Run(cmd.Context(), query.Query{
				Kind:  query.KindShortestPath,
				Start: start,
				End:   end,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, ans.Result); err != nil {
				return err
			}
			if showPath && ans.Route != nil {
				_, err = fmt.Fprintln(out, strings.Join(ans.Route, "-"))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start vertex")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End vertex")
	cmd.Flags().BoolVar(&showPath, "show-path", false, "Also print the vertices of the path")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// newCountCmd builds paths-by-stops and paths-by-distance; kind picks the
// attribute the search is bounded and filtered on.
func newCountCmd(a *app, kind query.Kind, short string) *cobra.Command {
	var (
		start, end, operator string
		value                int64
	)
	cmd := &cobra.Command{
		Use:   string(kind) + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query.Query{Kind: kind, Start: start, End: end, Operator: operator, Value: value}
			if err := q.Validate(); err != nil {
				return err
			}
			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			ans, err := e.Run(cmd.Context(), q)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Result)
			return err
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start vertex")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End vertex")
	cmd.Flags().StringVarP(&operator, "operator", "o", "", `Comparison: "<", "<=" or "=="`)
	cmd.Flags().Int64VarP(&value, "value", "v", 0, "Non-negative bound and comparison threshold")
	for _, name := range []string{"start", "end", "operator", "value"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var queriesPath string
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Answer every query of a YAML batch file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(queriesPath)
			if err != nil {
				return err
			}
			defer f.Close()
			queries, err := query.LoadBatch(f)
			if err != nil {
				return err
			}

			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			answers, err := e.RunBatch(cmd.Context(), queries)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ans := range answers {
				if _, err = fmt.Fprintln(out, ans.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&queriesPath, "queries", "q", "", "YAML file with a top-level queries list")
	_ = cmd.MarkFlagRequired("queries")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Print the graph as a Graphviz DOT document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ingest.LoadFile(args[0])
			if err != nil {
				return err
			}
			data, err := export.DOT(g.Edges(), name)
			if err != nil {
				return err
			}
			a.logger.Debug("graph exported", "file", args[0], "bytes", len(data))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "lvroute", "Graph name in the DOT output")

	return cmd
}
