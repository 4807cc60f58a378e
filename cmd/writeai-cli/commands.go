package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlorentedev/writeai/internal/client"
	"github.com/mlorentedev/writeai/internal/task"
)

const defaultOutFile = "writeai-output.txt"

type options struct {
	url      string
	file     string
	out      string
	language string
	tone     string
}

var (
	fixInput = color.New(color.FgRed, color.Bold)
	tryLater = color.New(color.FgYellow, color.Bold)
	done     = color.New(color.FgGreen)
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "writeai-cli",
		Short:         "Transform text through a writeai server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.url, "url", envOr("WRITEAI_URL", client.DefaultBaseURL), "writeai API base URL")

	root.AddCommand(
		taskCmd(opts, task.Summarize, "summarize [text...]", "Summarize text", nil),
		taskCmd(opts, task.Translate, "translate [text...]", "Translate text", func(c *cobra.Command) {
			c.Flags().StringVarP(&opts.language, "language", "l", task.DefaultLanguage, "target language")
		}),
		taskCmd(opts, task.CorrectGrammar, "grammar [text...]", "Correct grammar and spelling", nil),
		taskCmd(opts, task.Expand, "expand [text...]", "Expand text into a more detailed version", nil),
		taskCmd(opts, task.ChangeTone, "tone [text...]", "Rewrite text in another tone", func(c *cobra.Command) {
			c.Flags().StringVarP(&opts.tone, "tone", "t", task.DefaultTone, "target tone")
		}),
		tasksCmd(opts),
	)
	return root
}

func taskCmd(opts *options, t task.Task, use, short string, extra func(*cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), opts.file, args)
			if err != nil {
				return err
			}

			req := client.CompleteRequest{Task: string(t), Text: text}
			switch t {
			case task.Translate:
				req.Language = opts.language
			case task.ChangeTone:
				req.Tone = opts.tone
			}

			resp, err := client.New(opts.url).Complete(cmd.Context(), req)
			if err != nil {
				notifyFailure(cmd.ErrOrStderr(), err)
				return err
			}

			if opts.out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
				return nil
			}
			if err := os.WriteFile(opts.out, []byte(resp.Output), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			done.Fprintf(cmd.ErrOrStderr(), "Processing complete: saved to %s (%d ms)\n", opts.out, resp.ElapsedMs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read input text from file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write output to file (e.g. "+defaultOutFile+")")
	if extra != nil {
		extra(cmd)
	}
	return cmd
}

func tasksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List tasks, languages and tones offered by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := client.New(opts.url).Tasks(cmd.Context())
			if err != nil {
				notifyFailure(cmd.ErrOrStderr(), err)
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range catalog.Tasks {
				if t.Requires != "" {
					fmt.Fprintf(w, "%-16s %s (requires %s)\n", t.ID, t.Label, t.Requires)
					continue
				}
				fmt.Fprintf(w, "%-16s %s\n", t.ID, t.Label)
			}
			fmt.Fprintf(w, "languages: %s (default %s)\n", joinValues(catalog.Languages), catalog.DefaultLanguage)
			fmt.Fprintf(w, "tones:     %s (default %s)\n", joinValues(catalog.Tones), catalog.DefaultTone)
			return nil
		},
	}
}

// readInput takes text from --file, then positional args, then stdin.
// Whitespace-only input is sent as-is so the server reports it.
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func notifyFailure(w io.Writer, err error) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		tryLater.Fprintf(w, "Processing failed: %v\n", err)
		return
	}

	hint := apiErr.Hint
	if hint == "" {
		hint = apiErr.Message
	}
	if apiErr.TryLater() {
		tryLater.Fprintf(w, "Processing failed: %s\n", hint)
		return
	}
	fixInput.Fprintf(w, "Input required: %s\n", hint)
}

func joinValues(opts []task.Option) string {
	vals := make([]string, len(opts))
	for i, o := range opts {
		vals[i] = o.Value
	}
	return strings.Join(vals, ", ")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
