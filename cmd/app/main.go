// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/techfood/usuarios/cmd/app/commands"
	"github.com/techfood/usuarios/internal/app"
	"github.com/techfood/usuarios/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "User management service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-user",
				Usage: "Register a new user without going through the API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nome",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Full name of the user",
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "Email address (must be unique)",
					},
					&cli.StringFlag{
						Name:     "login",
						Aliases:  []string{"l"},
						Required: true,
						Usage:    "Login identifier (must be unique)",
					},
					&cli.StringFlag{
						Name:     "senha",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Password (stored hashed)",
					},
					&cli.StringFlag{
						Name:     "cpf",
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "CPF with 11 digits (must be unique)",
					},
					&cli.StringFlag{
						Name:    "tipo",
						Aliases: []string{"t"},
						Value:   "CLIENTE",
						Usage:   "User kind: CLIENTE or DONO_RESTAURANTE",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer func() { _ = container.Shutdown(ctx) }()

					useCase, err := container.UserUseCase()
					if err != nil {
						return err
					}

					return commands.RunCreateUser(
						ctx,
						useCase,
						container.Logger(),
						commands.CreateUserParams{
							Name:     cmd.String("nome"),
							Email:    cmd.String("email"),
							Login:    cmd.String("login"),
							Password: cmd.String("senha"),
							CPF:      cmd.String("cpf"),
							Kind:     cmd.String("tipo"),
							Format:   cmd.String("format"),
						},
						commands.DefaultIO(),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
