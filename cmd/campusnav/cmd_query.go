package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/httpapi"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/units"
)

func newRouteCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest walking route between two locations (ID or name)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			start, err := a.finder.Resolve(args[0])
			if err != nil {
				return err
			}
			end, err := a.finder.Resolve(args[1])
			if err != nil {
				return err
			}
			r, err := a.finder.FindRoute(start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(httpapi.NewRouteResponse(start, end, r))
			}
			printRoute(cmd, a, start, end, r)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")

	return cmd
}

func printRoute(cmd *cobra.Command, a *app, start, end string, r route.Route) {
	out := cmd.OutOrStdout()
	if !r.Found() {
		fmt.Fprintf(out, "No walkable route from %s to %s.\n", label(a, start), label(a, end))
		return
	}

	fmt.Fprintf(out, "Route: %s → %s\n", label(a, start), label(a, end))
	for i, wp := range r.Waypoints {
		name := wp.ID
		if wp.Name != "" {
			name = fmt.Sprintf("%s (%s)", wp.Name, wp.ID)
		}
		fmt.Fprintf(out, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(out, "Distance: %s\n", units.FormatDistance(r.Distance))
	fmt.Fprintf(out, "Walking time: %s\n", units.FormatDuration(r.EstimatedTime))
}

// label prefers a node's display name over its ID.
func label(a *app, id string) string {
	if n, err := a.finder.Node(id); err == nil && n.Name != "" {
		return n.Name
	}

	return id
}

func newNearestCmd(a *app) *cobra.Command {
	var cats []string

	cmd := &cobra.Command{
		Use:   "nearest X Y",
		Short: "Print the node closest to a map coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			filter := make([]campus.Category, len(cats))
			for i, c := range cats {
				filter[i] = campus.Category(c)
			}
			id, err := a.finder.NearestNode(x, y, filter...)
			if err != nil {
				return err
			}
			n, err := a.finder.Node(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t(%g, %g)\n", n.ID, n.Category, n.Name, n.X, n.Y)

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&cats, "category", nil, "restrict to these categories (repeatable)")

	return cmd
}

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List key locations sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			nodes, err := a.finder.KeyLocations()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tID\tTYPE")
			for _, n := range nodes {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Name, n.ID, n.Category)
			}

			return tw.Flush()
		},
	}
}
