package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"taskflow/internal/mapper"
)

func (c *CLI) tasks(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	var teamID, assigneeID int64
	var search string
	fs.Int64Var(&teamID, "team", 0, "Only tasks of this team id.")
	fs.Int64Var(&assigneeID, "assignee", 0, "Only tasks assigned to this user id.")
	fs.StringVar(&search, "search", "", "Case-insensitive text in title or description.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if teamID < 0 || assigneeID < 0 {
		return invalidInvocationf("tasks: ids must not be negative")
	}

	if err := c.uc.LoadDashboard(ctx); err != nil {
		return err
	}
	c.uc.SelectTeam(teamID)
	c.uc.SelectAssignee(assigneeID)
	c.uc.Search(search)

	snap := c.uc.Snapshot()
	if hint := snap.EmptyHint(); hint != "" {
		fmt.Fprintln(c.out, hint)
		return nil
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tTEAM\tASSIGNEE\tDUE")
	for _, t := range snap.Visible {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Title,
			t.Status,
			snap.TeamName(t.TeamID),
			snap.UserName(t.AssignedToID),
			mapper.FormatDate(t.DueDate),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%d of %d tasks\n", len(snap.Visible), len(snap.Tasks))
	return nil
}

func (c *CLI) runServe(ctx context.Context, args []string) error {
	if err := parseFlags(flag.NewFlagSet("serve", flag.ContinueOnError), args); err != nil {
		return err
	}
	if c.serve == nil {
		return fmt.Errorf("serve: dashboard unavailable")
	}
	return c.serve(ctx)
}
