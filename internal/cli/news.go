package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"f1insights/internal/insights"
	"f1insights/internal/models"
)

func newNewsCmd(svc *insights.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Browse the latest F1 news",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := svc.News.LatestArticles(cmd.Context())
			if err != nil {
				notice(cmd, "could not load the news listing", err)
				return nil
			}
			if len(articles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No articles available right now.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Title", "URL"})
			for i, a := range articles {
				t.AppendRow(table.Row{i + 1, a.Title, a.URL})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.AddCommand(newNewsAnalyzeCmd(svc))
	return cmd
}

func newNewsAnalyzeCmd(svc *insights.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <article number or URL>",
		Short: "Summarize an article and extract entities and sentiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.GatewayErr != nil {
				notice(cmd, "analysis unavailable", svc.GatewayErr)
				return nil
			}

			article, ok := resolveArticle(cmd, svc, args[0])
			if !ok {
				return nil
			}

			analysis, err := svc.AnalyzeArticle(cmd.Context(), article)
			if err != nil {
				notice(cmd, "could not fetch the article body", err)
				return nil
			}

			out := cmd.OutOrStdout()
			if article.Title != "" {
				fmt.Fprintf(out, "%s\n%s\n\n", article.Title, article.URL)
			}
			fmt.Fprintf(out, "Summary:\n%s\n\n", analysis.Summary)
			fmt.Fprintln(out, "Entities:")
			for _, e := range analysis.Entities {
				fmt.Fprintf(out, "  - %s\n", e)
			}
			fmt.Fprintf(out, "\nSentiment:\n%s\n", analysis.Sentiment)
			return nil
		},
	}
}

// resolveArticle accepts either an index into a freshly loaded listing
// or a direct article URL.
func resolveArticle(cmd *cobra.Command, svc *insights.Service, arg string) (models.Article, bool) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return models.Article{URL: arg}, true
	}

	index, err := strconv.Atoi(arg)
	if err != nil {
		notice(cmd, "invalid article reference", fmt.Errorf("%q is neither a number nor a URL", arg))
		return models.Article{}, false
	}

	articles, err := svc.News.LatestArticles(cmd.Context())
	if err != nil {
		notice(cmd, "could not load the news listing", err)
		return models.Article{}, false
	}
	if index < 1 || index > len(articles) {
		notice(cmd, "invalid article number", fmt.Errorf("pick between 1 and %d", len(articles)))
		return models.Article{}, false
	}
	return articles[index-1], true
}
