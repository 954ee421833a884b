package main

import (
	"fmt"

	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var glossaryJSON bool

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Render the glossary as Markdown sections or a JSON object",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		defs, err := sess.store.LookupGlossaryTerms(cmd.Context(), notion.Query{})
		if err != nil {
			return err
		}
		terms := record.LinkableTermsFor(defs)
		icons := format.NewIconRenderer(sess.cfg.IconBlacklist)

		render := record.RenderGlossary
		if glossaryJSON {
			render = record.RenderGlossaryJSON
		}
		out, err := render(defs, terms, icons)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	glossaryCmd.Flags().BoolVar(&glossaryJSON, "json", false, "Print a JSON object keyed by anchor")
	rootCmd.AddCommand(glossaryCmd)
}
