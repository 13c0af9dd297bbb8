package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"restaurant-inventory/cmd/config"
	migration "restaurant-inventory/cmd/database/migrate"
	"restaurant-inventory/domain"
	"restaurant-inventory/internal/metrics"
	"restaurant-inventory/internal/utils"
	"restaurant-inventory/internal/utils/logger"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/jwt"
	"restaurant-inventory/pkg/report"
)

const shutdownTimeout = 10 * time.Second

var (
	envFile     string
	yamlFile    string
	skipMigrate bool
	tokenSub    string
	tokenTTL    time.Duration
	reportOut   string

	rootCmd = &cobra.Command{
		Use:           "restaurant-inventory",
		Short:         "Restaurant inventory data-access service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and recreate the aggregate views",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Issue an operator bearer token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE:  runToken,
	}

	reportCmd = &cobra.Command{
		Use:       "report [total-stock|ingredients-used|remaining]",
		Short:     "Write an aggregate view as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: report.Slugs(),
		RunE:      runReport,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().StringVar(&yamlFile, "config", "config.yaml", "yaml config file to load")

	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on start")

	tokenCmd.Flags().StringVar(&tokenSub, "subject", "operator", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", jwt.DefaultTTL, "token lifetime")

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (stdout when empty)")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd, reportCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and installs the global logger.
func bootstrap() (utils.Config, *zap.Logger, error) {
	cfg, err := utils.LoadConfigFrom(envFile, yamlFile)
	if err != nil {
		return utils.Config{}, nil, err
	}

	log, err := logger.InitLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return utils.Config{}, nil, err
	}

	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	appMetrics := metrics.New()
	manager, err := config.ConnectDB(cfg, appMetrics)
	if err != nil {
		return err
	}
	defer manager.Close()

	if !skipMigrate {
		if err := migration.Migrate(manager.DB()); err != nil {
			return err
		}
	}

	app, err := config.NewApp(manager, cfg, appMetrics)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.Info("starting server", zap.String("address", addr), zap.String("driver", cfg.DBDriver))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	manager, err := config.ConnectDB(cfg, nil)
	if err != nil {
		return err
	}
	defer manager.Close()

	if err := migration.Migrate(manager.DB()); err != nil {
		return err
	}
	log.Info("migration completed", zap.String("driver", cfg.DBDriver))
	return nil
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, _, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is not configured")
	}

	token, err := jwt.NewJWTService(cfg.JWTSecret).GenerateToken(tokenSub, domain.RoleOperator, tokenTTL)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	manager, err := config.ConnectDB(cfg, nil)
	if err != nil {
		return err
	}
	defer manager.Close()

	return writeReport(cmd.Context(), manager, args[0], cmd)
}

func writeReport(ctx context.Context, manager *database.Manager, slug string, cmd *cobra.Command) error {
	service := report.NewReportService(report.NewReportRepository(manager), nil, nil)
	data, err := service.CSV(ctx, slug)
	if err != nil {
		return err
	}

	if reportOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(reportOut, data, 0o644)
}
