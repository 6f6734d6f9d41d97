package app

import (
	"context"
	"fmt"

	"github.com/allisson/sesame/internal/config"
	vaultHTTP "github.com/allisson/sesame/internal/vault/http"
	vaultRepository "github.com/allisson/sesame/internal/vault/repository"
	vaultUseCase "github.com/allisson/sesame/internal/vault/usecase"
)

// VaultRepository returns the vault repository for the configured database driver.
func (c *Container) VaultRepository() (vaultUseCase.VaultRepository, error) {
	c.vaultRepoInit.Do(func() {
		var err error
		c.vaultRepo, err = c.initVaultRepository()
		c.setError("vaultRepo", err)
	})
	return c.vaultRepo, c.storedError("vaultRepo")
}

// VaultUseCase returns the vault use case.
func (c *Container) VaultUseCase() (vaultUseCase.VaultUseCase, error) {
	c.vaultUseCaseInit.Do(func() {
		var err error
		c.vaultUseCase, err = c.initVaultUseCase()
		c.setError("vaultUseCase", err)
	})
	return c.vaultUseCase, c.storedError("vaultUseCase")
}

// RotationUseCase returns the key rotation use case.
func (c *Container) RotationUseCase() (vaultUseCase.RotationUseCase, error) {
	c.rotationUseCaseInit.Do(func() {
		var err error
		c.rotationUseCase, err = c.initRotationUseCase()
		c.setError("rotationUseCase", err)
	})
	return c.rotationUseCase, c.storedError("rotationUseCase")
}

// VaultHandler returns the HTTP handler for the vault routes.
func (c *Container) VaultHandler() (*vaultHTTP.VaultHandler, error) {
	c.vaultHandlerInit.Do(func() {
		var err error
		c.vaultHandler, err = c.initVaultHandler()
		c.setError("vaultHandler", err)
	})
	return c.vaultHandler, c.storedError("vaultHandler")
}

// initVaultRepository selects the repository implementation from the database driver.
func (c *Container) initVaultRepository() (vaultUseCase.VaultRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for vault repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverMySQL:
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for vault repository: %w", err)
		}
		return vaultRepository.NewMySQLVaultRepository(db, txManager), nil
	case config.DriverPostgres:
		return vaultRepository.NewPostgreSQLVaultRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initVaultUseCase creates the vault use case with all its dependencies.
func (c *Container) initVaultUseCase() (vaultUseCase.VaultUseCase, error) {
	keyRegistry, err := c.KeyRegistry(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get key registry for vault use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for vault use case: %w", err)
	}

	vaultRepo, err := c.VaultRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get vault repository for vault use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for vault use case: %w", err)
	}

	baseUseCase := vaultUseCase.NewVaultUseCase(
		vaultRepo,
		keyRegistry,
		cipher,
		c.config.PurgeUnresolvableRecords,
		c.Logger(),
	)
	return vaultUseCase.NewVaultUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}

// initRotationUseCase creates the rotation use case with all its dependencies.
func (c *Container) initRotationUseCase() (vaultUseCase.RotationUseCase, error) {
	if err := c.config.ValidateRotation(); err != nil {
		return nil, err
	}

	keyRegistry, err := c.KeyRegistry(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get key registry for rotation use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for rotation use case: %w", err)
	}

	vaultRepo, err := c.VaultRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get vault repository for rotation use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for rotation use case: %w", err)
	}

	baseUseCase := vaultUseCase.NewRotationUseCase(
		vaultUseCase.RotationConfig{
			BatchSize: c.config.RotationBatchWidth(),
			Timeout:   c.config.RotationTimeout,
		},
		vaultRepo,
		keyRegistry,
		cipher,
		c.Logger(),
	)
	return vaultUseCase.NewRotationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}

// initVaultHandler creates the vault HTTP handler.
func (c *Container) initVaultHandler() (*vaultHTTP.VaultHandler, error) {
	useCase, err := c.VaultUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get vault use case for vault handler: %w", err)
	}
	return vaultHTTP.NewVaultHandler(useCase, c.config.BaseURI, c.Logger()), nil
}
