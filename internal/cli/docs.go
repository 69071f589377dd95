package cli

import (
	"fmt"
	"strings"

	"datepick/internal/docs"
	"datepick/internal/tui"

	"github.com/spf13/cobra"
)

const docsWidth = 80

type topicList struct {
	Topics []string `json:"topics"`
}

func (l topicList) Text() string { return strings.Join(l.Topics, "\n") }

type topicDoc struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (d topicDoc) Text() string { return tui.RenderMarkdown(d.Markdown, docsWidth) }

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in help topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `datepick docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, topicDoc{Topic: strings.ToLower(topic), Markdown: body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}
