package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/finprod/internal/cli"
	"github.com/rshade/finprod/pkg/version"
)

func TestRun(t *testing.T) {
	t.Setenv("FINPROD_HOME", t.TempDir())

	t.Run("unknown command fails", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run(context.Background(), []string{"no-such-command"}, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Error:")
	})

	t.Run("invalid config fails", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run(context.Background(), []string{"--api-url", "not a url", "version"}, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "api.base_url")
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "finprod", root.Use)
	})
}
