package main

import (
	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var documentsSlug string

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List documents as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		docs, err := sess.store.LookupDocuments(cmd.Context(), record.DocumentQuery(documentsSlug))
		if err != nil {
			return err
		}
		type entry struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Slug  string `json:"slug"`
		}
		out := make([]entry, 0, len(docs))
		for _, d := range docs {
			out = append(out, entry{ID: d.ID, Title: doctree.PlainText(d.Title), Slug: d.SlugText()})
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	documentsCmd.Flags().StringVar(&documentsSlug, "slug", "", "Only documents published under this slug")
	rootCmd.AddCommand(documentsCmd)
}
