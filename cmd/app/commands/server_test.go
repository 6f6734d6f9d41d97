package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeServer struct {
	err    error
	called bool
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.called = true
	return f.err
}

func TestShutdownServers(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		api, metrics := &fakeServer{}, &fakeServer{}

		err := shutdownServers(context.Background(), []shutdowner{api, metrics})

		assert.NoError(t, err)
		assert.True(t, api.called)
		assert.True(t, metrics.called)
	})

	t.Run("every server is shut down even after a failure", func(t *testing.T) {
		apiErr := errors.New("api busy")
		api, metrics := &fakeServer{err: apiErr}, &fakeServer{}

		err := shutdownServers(context.Background(), []shutdowner{api, metrics})

		assert.ErrorIs(t, err, apiErr)
		assert.True(t, metrics.called)
	})
}

func TestRunServer_InvalidConfiguration(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	err := RunServer(context.Background(), "test")

	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
