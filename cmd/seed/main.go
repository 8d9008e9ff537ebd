package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campus-market.backend/internal/config"
	"campus-market.backend/internal/infrastructure/repositories"
	"campus-market.backend/pkg/crypto"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{TranslateError: true})
	}
	hashPassword = crypto.HashPasswordWithCost
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "seed",
		Short:        "Insert demo users and listings",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotenv(); err != nil {
				log.Println("No .env file found, using environment variables")
			}
			cfg := loadCfg()

			db, err := openDB(cfg.Database.URL())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			hash, err := hashPassword(demoPassword, cfg.Security.BcryptCost)
			if err != nil {
				return fmt.Errorf("hash demo password: %w", err)
			}

			s := &seeder{
				users:        repositories.NewUserRepository(db),
				products:     repositories.NewProductRepository(db),
				transactions: repositories.NewTransactionRepository(db),
				passwordHash: hash,
				now:          func() time.Time { return time.Now().UTC() },
			}
			summary, err := s.run(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seeded %d users, %d listings, %d transactions\n", summary.Users, summary.Listings, summary.Transactions)
			for _, u := range demoUsers {
				fmt.Fprintf(out, "  %s / %s (%s)\n", u.email, demoPassword, u.role)
			}
			return nil
		},
	}
}
