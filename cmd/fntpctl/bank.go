package main

import (
	"fmt"
	"io"

	"fntp-backend/lib/questionbank"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank [template]",
	Short: "Show question bank templates and their modules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := questionbank.Names()
		if len(args) == 1 {
			names = args
		}
		for _, name := range names {
			tpl, err := questionbank.ByName(name)
			if err != nil {
				return err
			}
			printTemplate(cmd.OutOrStdout(), tpl, withQuestions)
		}
		return nil
	},
}

var withQuestions bool

func init() {
	bankCmd.Flags().BoolVarP(&withQuestions, "questions", "q", false, "list questions of every module")
}

func printTemplate(w io.Writer, tpl *questionbank.Template, questions bool) {
	_, _ = fmt.Fprintf(w, "%s v%s: %d questions\n", tpl.Name(), tpl.Version(), tpl.Total())
	for _, module := range tpl.Modules() {
		_, _ = fmt.Fprintf(w, "  %-20s %d\n", module, tpl.ModuleTotal(module))
		if !questions {
			continue
		}
		for _, q := range tpl.QuestionsByModule(module) {
			_, _ = fmt.Fprintf(w, "    %-36s %-9s %s\n", q.ID, q.Type, q.Text)
		}
	}
}
