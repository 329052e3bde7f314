package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saad12354/site-stock-app/internal/statefile"
	"github.com/saad12354/site-stock-app/pkg/editor"
	"github.com/saad12354/site-stock-app/pkg/export"
	"github.com/saad12354/site-stock-app/pkg/validation"
	"github.com/saad12354/site-stock-app/pkg/visibility"
)

func (a *app) summaryCommand() *cobra.Command {
	var (
		file     string
		copyText bool
		share    bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the inventory summary for a state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Summary())

			if copyText {
				fmt.Fprintln(cmd.ErrOrStderr(), renderNotice(s.Copy()))
			}
			if share {
				link, notice := s.Share()
				fmt.Fprintln(cmd.ErrOrStderr(), renderNotice(notice))
				fmt.Fprintln(out, link)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "State file (YAML or JSON)")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the summary to the clipboard")
	cmd.Flags().BoolVar(&share, "share", false, "Print a WhatsApp share link")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a state file against the field rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, result, err := statefile.Load(file)
			if err != nil {
				if len(result.Issues) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), renderIssues(result))
				}
				return err
			}
			a.logger.Debug("state validated", slog.String("path", file), slog.Int("issues", len(result.Issues)))
			fmt.Fprintln(cmd.OutOrStdout(), renderIssues(result))
			if !result.Valid {
				return errInvalidState
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "State file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) filterCommand() *cobra.Command {
	var (
		file         string
		search       string
		categories   []string
		onlySelected bool
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show the categories matching a search and category filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(file)
			if err != nil {
				return err
			}
			q := visibility.Query{Search: search, OnlySelected: onlySelected}
			seen := make(map[visibility.Category]bool, len(categories))
			for _, raw := range categories {
				c := visibility.Category(strings.TrimSpace(raw))
				if !c.Valid() {
					a.logger.Debug("ignoring unknown category", slog.String("category", raw))
				}
				if seen[c] {
					continue
				}
				seen[c] = true
				q.Categories = append(q.Categories, c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCategories(s.Visibility(q), q))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "State file (YAML or JSON)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive search term")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Categories to show (pipes, insulation, fittings, nuts, wires, tools, materials)")
	cmd.Flags().BoolVar(&onlySelected, "selected-only", false, "Count only selected entries with a quantity")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) printCommand() *cobra.Command {
	var file, output string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write the printable HTML summary page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(file)
			if err != nil {
				return err
			}
			if output == "" {
				if notice := s.Print(cmd.OutOrStdout()); notice.Failed() {
					fmt.Fprintln(cmd.ErrOrStderr(), renderNotice(notice))
					return errReported
				}
				return nil
			}

			var page bytes.Buffer
			notice := s.Print(&page)
			if !notice.Failed() {
				if err := writeFile(output, page.Bytes()); err != nil {
					a.logger.Warn("print page failed", slog.String("path", output), slog.Any("error", err))
					notice = export.PrintFailed(err)
				}
			}
			fmt.Fprintln(cmd.ErrOrStderr(), renderNotice(notice))
			if notice.Failed() {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "State file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML file (stdout if empty)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) editCommand() *cobra.Command {
	var file, output string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Fill in the inventory form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(file)
			if err != nil {
				return err
			}
			ed, err := editor.New(
				editor.WithPromptDriver(a.driver),
				editor.WithOutput(cmd.OutOrStdout()),
				editor.WithPageSize(a.cfg.Editor.PageSize),
				editor.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			if err := ed.Run(cmd.Context(), s); err != nil {
				if errors.Is(err, editor.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("aborted, nothing saved"))
					return nil
				}
				return err
			}

			if output != "" {
				if err := statefile.Save(output, s.State()); err != nil {
					return err
				}
				a.logger.Info("state saved", slog.String("path", output))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderIssues(s.Validate()))
			fmt.Fprintln(cmd.OutOrStdout(), s.Summary())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "State file to start from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save the edited state to this file")
	return cmd
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI 3 schema of the inventory document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := json.MarshalIndent(validation.OpenAPISchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
}

// writeFile writes data to path and reports the close error, which carries
// the final flush.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
