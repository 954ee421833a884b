package main

import (
	"fmt"

	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/spf13/cobra"
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Print the portal projects as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		projects, err := sess.store.LookupPortalProjects(cmd.Context(), notion.Query{})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), projects)
	},
}

var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Print the page id of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		pageID, err := sess.store.LookupProject(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), pageID)
		return err
	},
}

func init() {
	rootCmd.AddCommand(portalCmd)
	rootCmd.AddCommand(projectCmd)
}
