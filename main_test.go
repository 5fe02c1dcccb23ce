package main

import (
	"context"
	"os"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "2.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Number Challenge Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	gameService, err := initializeServices("configs")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	_, err := initializeServices("/non/existent/path")
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestOptionsFromCommand(t *testing.T) {
	var opts serverOptions

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 8080},
			&cli.StringFlag{Name: "host", Value: "localhost"},
			&cli.StringFlag{Name: "config-dir", Value: "configs"},
			&cli.BoolFlag{Name: "ngrok"},
			&cli.StringFlag{Name: "ngrok-auth"},
			&cli.StringFlag{Name: "ngrok-domain"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts = optionsFromCommand(cmd)
			return nil
		},
	}

	args := []string{"number-challenge", "--port", "9090", "--host", "0.0.0.0", "--ngrok", "--ngrok-auth", "tok123"}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("command run failed: %v", err)
	}

	if opts.port != 9090 {
		t.Errorf("Expected port 9090, got %d", opts.port)
	}
	if opts.host != "0.0.0.0" {
		t.Errorf("Expected host 0.0.0.0, got %s", opts.host)
	}
	if opts.configDir != "configs" {
		t.Errorf("Expected default config dir, got %s", opts.configDir)
	}
	if !opts.ngrok {
		t.Error("Expected ngrok to be enabled")
	}
	if opts.ngrokAuth != "tok123" {
		t.Errorf("Expected ngrok auth token tok123, got %s", opts.ngrokAuth)
	}
}

func TestOptionsFromCommand_Defaults(t *testing.T) {
	var opts serverOptions

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 8080},
			&cli.StringFlag{Name: "host", Value: "localhost"},
			&cli.StringFlag{Name: "config-dir", Value: "configs"},
			&cli.BoolFlag{Name: "ngrok"},
			&cli.StringFlag{Name: "ngrok-auth"},
			&cli.StringFlag{Name: "ngrok-domain"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts = optionsFromCommand(cmd)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), []string{"number-challenge"}); err != nil {
		t.Fatalf("command run failed: %v", err)
	}

	if opts.port != 8080 {
		t.Errorf("Expected default port 8080, got %d", opts.port)
	}
	if opts.host != "localhost" {
		t.Errorf("Expected default host localhost, got %s", opts.host)
	}
	if opts.ngrok {
		t.Error("Expected ngrok to default to disabled")
	}
}

// Note: We can't easily test main(), runHTTPServer(), and runStdioMCPWithInternalServer()
// without significant mocking or refactoring, as they start servers and block.
// These functions would be better tested in integration tests that start actual servers
// and test their endpoints.

func TestServiceInitialization(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Service initialization panicked: %v", r)
		}
	}()

	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	_, err := initializeServices("configs")
	if err != nil {
		// This is expected if configs are missing, but shouldn't panic
		t.Logf("Service initialization failed as expected: %v", err)
	}
}
