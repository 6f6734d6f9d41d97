package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sesame/cmd/app/commands"
	authService "github.com/allisson/sesame/internal/auth/service"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-encryption-key",
			Usage: "Generate an encryption key entry for ENCRYPTION_KEYS",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Encryption key ID stored with every record it encrypts (e.g., 2026-10)",
				},
				&cli.StringFlag{
					Name:    "kms-key-uri",
					Aliases: []string{"k"},
					Usage:   "Wrap the key material with this KMS key (gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateEncryptionKey(
					ctx,
					cryptoService.NewKMSService(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:  "generate-api-key",
			Usage: "Generate an API key environment entry for a client",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "client",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Client name used as the basic-auth username (letters, digits and underscores)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateAPIKey(
					authService.NewAPIKeyService(),
					commands.DefaultIO().Writer,
					cmd.String("client"),
				)
			},
		},
	}
}
