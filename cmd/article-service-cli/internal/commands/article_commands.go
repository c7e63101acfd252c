package commands

import (
	"encoding/json"
	"fmt"

	v1 "github.com/MGTheTrain/article-service/internal/api/rest/v1"
	"github.com/MGTheTrain/article-service/internal/app"
	"github.com/MGTheTrain/article-service/internal/domain/access"
	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence"
	"github.com/MGTheTrain/article-service/internal/infrastructure/token"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// ArticleCommandHandler encapsulates logic for handling article service maintenance via CLI.
type ArticleCommandHandler struct {
	configPath *string
	logger     logger.Logger
}

// NewArticleCommandHandler initializes and returns an ArticleCommandHandler.
// The configuration is read when a command runs, so that --config is honored.
func NewArticleCommandHandler(configPath *string) (*ArticleCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ArticleCommandHandler{
		configPath: configPath,
		logger:     loggerInstance,
	}, nil
}

// IssueTokenCmd prints a signed bearer token for a user id
func (commandHandler *ArticleCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetInt64("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}

	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		return fmt.Errorf("invalid ttl flag: %w", err)
	}

	cfg, err := loadConfig(*commandHandler.configPath)
	if err != nil {
		return err
	}

	manager, err := token.NewJWTManager(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}

	if ttl == 0 {
		ttl = cfg.Auth.TokenTTL
	}

	signed, err := manager.IssueWithTTL(userID, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
	return err
}

// CheckAdminCmd reports whether a user id is on the admin allow list
func (commandHandler *ArticleCommandHandler) CheckAdminCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetInt64("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}

	cfg, err := loadConfig(*commandHandler.configPath)
	if err != nil {
		return err
	}

	allowList := access.NewAllowList(cfg.Auth.Admins)
	if allowList.Contains(userID) {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %d is an admin\n", userID)
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %d is not an admin\n", userID)
	}
	return err
}

// MigrateCmd creates or updates the articles table
func (commandHandler *ArticleCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(*commandHandler.configPath)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database: ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	commandHandler.logger.Info("Migrated ", cfg.Database.Type, " database")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
	return err
}

// ListArticlesCmd prints every stored article as JSON, oldest first
func (commandHandler *ArticleCommandHandler) ListArticlesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(*commandHandler.configPath)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database: ", err)
		}
	}()

	repo, err := persistence.NewGormArticleRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}

	queryService, err := app.NewArticleQueryService(repo, commandHandler.logger)
	if err != nil {
		return err
	}

	list, err := queryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}

	response := lo.Map(list, func(article *articles.Article, _ int) v1.ArticleResponse {
		return v1.NewArticleResponse(article)
	})

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// InitArticleCommands registers the article service commands with the root command
func InitArticleCommands(rootCmd *cobra.Command, configPath *string) error {
	handler, err := NewArticleCommandHandler(configPath)
	if err != nil {
		return fmt.Errorf("failed to create article command handler: %w", err)
	}

	var issueTokenCmd = &cobra.Command{
		Use:   "issue-token",
		Short: "Print a signed bearer token for a user id",
		RunE:  handler.IssueTokenCmd,
	}
	issueTokenCmd.Flags().Int64P("user-id", "", 0, "User id carried in the token subject")
	issueTokenCmd.Flags().DurationP("ttl", "", 0, "Token lifetime, defaults to auth.token_ttl")
	_ = issueTokenCmd.MarkFlagRequired("user-id")
	rootCmd.AddCommand(issueTokenCmd)

	var checkAdminCmd = &cobra.Command{
		Use:   "check-admin",
		Short: "Report whether a user id is on the admin allow list",
		RunE:  handler.CheckAdminCmd,
	}
	checkAdminCmd.Flags().Int64P("user-id", "", 0, "User id to check")
	_ = checkAdminCmd.MarkFlagRequired("user-id")
	rootCmd.AddCommand(checkAdminCmd)

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the articles table",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var listArticlesCmd = &cobra.Command{
		Use:   "list-articles",
		Short: "Print stored articles as JSON",
		RunE:  handler.ListArticlesCmd,
	}
	rootCmd.AddCommand(listArticlesCmd)

	return nil
}
