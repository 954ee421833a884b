package main

import (
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var questionsContains string

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print questions with their categories as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		questions, err := sess.store.LookupQuestions(cmd.Context(), record.QuestionQuery(questionsContains))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), questions)
	},
}

func init() {
	questionsCmd.Flags().StringVar(&questionsContains, "contains", "", "Only questions containing this text")
	rootCmd.AddCommand(questionsCmd)
}
