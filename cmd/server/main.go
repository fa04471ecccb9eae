// Package main is the entry point for the armory gRPC server and its tooling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/cmd/server/client"
)

var (
	envFile   string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-armory",
	Short: "RPG Armory gRPC Server",
	Long:  `RPG Armory allocates tiered battle and civilian equipment to heroes over a gRPC interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional .env file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address, comma separated for cluster mode (overrides ARMORY_REDIS_ADDR)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(scanHeroesCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
