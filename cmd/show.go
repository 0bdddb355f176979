package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ysaito/ghfolio/internal/domain"
	"github.com/ysaito/ghfolio/internal/gateway"
	"github.com/ysaito/ghfolio/internal/presenter"
	"github.com/ysaito/ghfolio/internal/tui"
	"github.com/ysaito/ghfolio/internal/usecase"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetches a user's public repositories and renders them as project cards",
	Long: `Fetches every public repository of the given user through the paginated
listing endpoint, keeps the portfolio-eligible ones, and shows them as cards
with aggregate stats. The interactive view supports re-sorting (by recency,
stars or name) without re-fetching, and reloading on demand. With --json the
portfolio is printed once to standard output instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			user = viper.GetString("user")
		}
		if user == "" {
			return fmt.Errorf("no user given: pass --user or set GHFOLIO_USER")
		}

		sortStr, _ := cmd.Flags().GetString("sort")
		if sortStr == "" {
			sortStr = viper.GetString("sort")
		}
		sortKey := domain.ParseSortKey(sortStr)

		perPage, _ := cmd.Flags().GetInt("per-page")
		if !cmd.Flags().Changed("per-page") {
			perPage = viper.GetInt("per_page")
		}

		// Optional: listing public repositories works unauthenticated,
		// a token only raises the rate limit.
		token := os.Getenv("GITHUB_TOKEN")

		githubGateway, err := gateway.NewGitHubGateway(token, perPage, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		loader := usecase.NewLoader(githubGateway, logger)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printPortfolioJSON(loader, user, sortKey)
		}
		return tui.Run(loader, presenter.NewResolver(logger), user, sortKey, logger)
	},
}

// printPortfolioJSON runs a single load cycle and prints the sorted result,
// for scripting and piping.
func printPortfolioJSON(loader *usecase.Loader, user string, sortKey domain.SortKey) error {
	portfolio, err := loader.Load(context.Background(), user)
	if err != nil {
		return fmt.Errorf("failed to load portfolio: %w", err)
	}
	portfolio.Projects = usecase.SortProjects(portfolio.Projects, sortKey)

	jsonData, err := json.MarshalIndent(portfolio, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio to JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("user", "u", "", "GitHub user whose repositories to show")
	showCmd.Flags().StringP("sort", "s", "", "Initial sort key (recency, popularity, name)")
	showCmd.Flags().Int("per-page", 100, "Repositories requested per listing page")
	showCmd.Flags().Bool("json", false, "Print the portfolio as JSON instead of launching the UI")
}
