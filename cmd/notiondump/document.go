package main

import (
	"fmt"

	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var documentMode string

var documentCmd = &cobra.Command{
	Use:   "document <page-id>",
	Short: "Render a document page",
	Long: `Render a document page and its metadata preamble. Page links resolve
against the glossary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := format.ParseMode(documentMode)
		if err != nil {
			return err
		}
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx := cmd.Context()
		defs, err := sess.store.LookupGlossaryTerms(ctx, notion.Query{})
		if err != nil {
			return err
		}
		doc, err := sess.store.LookupDocument(ctx, args[0])
		if err != nil {
			return err
		}
		out, err := doc.Render(record.LinkableTermsFor(defs), mode)
		if err != nil {
			record.HandleRenderError(ctx, err, sess.client, sess.log)
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	documentCmd.Flags().StringVarP(&documentMode, "mode", "m", "markdown", "Output mode: html, markdown or plain")
	rootCmd.AddCommand(documentCmd)
}
