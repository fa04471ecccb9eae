// Package client provides commands that call a running armory gRPC server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// shared by the hero commands
	heroID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the armory service",
	Long:  `Client commands call a running armory server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(createHeroCmd)
	ClientCmd.AddCommand(getHeroCmd)
	ClientCmd.AddCommand(equipHeroCmd)
	ClientCmd.AddCommand(removeEquipmentCmd)
}

// createArmoryClient creates an armory service client
func createArmoryClient() (*v1alpha1.ArmoryServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewArmoryServiceClient(conn), cleanup, nil
}
