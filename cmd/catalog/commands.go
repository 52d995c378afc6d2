package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"residence-facilities/internal/catalog"
	"residence-facilities/internal/domain"
	categoryrepo "residence-facilities/internal/repository/category"
	facilityrepo "residence-facilities/internal/repository/facility"
	facilitysvc "residence-facilities/internal/service/facility"
)

var (
	category string
	output   string
	strict   bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with facility counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List facilities, optionally filtered by category",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report catalog inconsistencies",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	listCmd.Flags().StringVarP(&category, "category", "c", domain.CategoryAll, "Category id to filter by (exact match)")
	for _, cmd := range []*cobra.Command{categoriesCmd, listCmd, checkCmd} {
		cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, yaml or csv")
	}
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when a warning is found")
}

func newService() *facilitysvc.Service {
	return facilitysvc.New(categoryrepo.NewStatic(logger), facilityrepo.NewStatic(logger))
}

func runCategories(cmd *cobra.Command, _ []string) error {
	counts, err := newService().Counts(context.Background())
	if err != nil {
		return err
	}
	cats := catalog.Categories()

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.ID, c.Label, strconv.Itoa(counts[c.ID])})
	}
	return render(cmd.OutOrStdout(), cats, []string{"ID", "LABEL", "COUNT"}, rows)
}

func runList(cmd *cobra.Command, _ []string) error {
	items, err := newService().List(context.Background(), category)
	if err != nil {
		return err
	}
	logger.Debug("listed facilities", zap.String("category", category), zap.Int("count", len(items)))

	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, []string{f.Title, f.Category, f.BadgeLabel, strings.Join(f.Features, "; ")})
	}
	return render(cmd.OutOrStdout(), items, []string{"TITLE", "CATEGORY", "BADGE", "FEATURES"}, rows)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	issues := catalog.Check(catalog.Categories(), catalog.Facilities())

	rows := make([][]string, 0, len(issues))
	for _, i := range issues {
		rows = append(rows, []string{string(i.Severity), i.Subject, i.Message})
	}
	if err := render(cmd.OutOrStdout(), issues, []string{"SEVERITY", "SUBJECT", "MESSAGE"}, rows); err != nil {
		return err
	}
	if strict && catalog.HasWarnings(issues) {
		return fmt.Errorf("catalog has %d issue(s)", len(issues))
	}
	return nil
}

// render writes v in the selected output format. Table and csv use the
// header and rows; json and yaml encode v directly.
func render(w io.Writer, v any, header []string, rows [][]string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()
	case "table", "":
		table := tablewriter.NewWriter(w)
		table.Header(cells(header)...)
		for _, r := range rows {
			if err := table.Append(cells(r)...); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}
