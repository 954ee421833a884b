package main

import (
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var faqsContains string

var faqsCmd = &cobra.Command{
	Use:   "faqs",
	Short: "Print publishable FAQs as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		faqs, err := sess.store.LookupFAQs(cmd.Context(), record.PublishedFAQQuery(faqsContains))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), faqs)
	},
}

func init() {
	faqsCmd.Flags().StringVar(&faqsContains, "contains", "", "Only FAQs whose question contains this text")
	rootCmd.AddCommand(faqsCmd)
}
