package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	planline "github.com/planline/planline-go"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and inspect projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			projects, err := client.Projects().List(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(projects)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tARCHIVED")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%v\n", p.ID, p.Name, p.Archived)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			project, err := client.Projects().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(project)
		},
	})

	return cmd
}

func newTicketsCmd() *cobra.Command {
	var status, assignee, tag string

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List, inspect, and close tickets",
	}

	listCmd := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List tickets in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			filter := planline.TicketFilter{Status: status, Assignee: assignee, Tag: tag}
			tickets, err := client.Tickets().List(cmd.Context(), projectID, filter)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(tickets)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tSTATUS\tASSIGNEE\tTITLE")
			for _, t := range tickets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.Number, t.Status, t.Assignee, t.Title)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&assignee, "assignee", "", "Filter by assignee")
	listCmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <project-id> <number>",
		Short: "Show one ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, number, err := parseTicketArgs(args)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			ticket, err := client.Tickets().Get(cmd.Context(), projectID, number)
			if err != nil {
				return err
			}
			return printJSON(ticket)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close <project-id> <number>",
		Short: "Close a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, number, err := parseTicketArgs(args)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			ticket, err := client.Tickets().Close(cmd.Context(), projectID, number)
			if err != nil {
				return err
			}
			okLabel.Printf("closed ticket #%d\n", ticket.Number)
			return nil
		},
	})

	return cmd
}

func parseTicketArgs(args []string) (projectID, number int, err error) {
	projectID, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid project id %q", args[0])
	}
	number, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ticket number %q", args[1])
	}
	return projectID, number, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
