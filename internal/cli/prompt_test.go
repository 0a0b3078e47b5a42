package cli

import (
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/finprod/internal/mockapi"
	"github.com/rshade/finprod/internal/product"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, confirm(&out, strings.NewReader(tt.input), "Proceed?"))
			assert.Contains(t, out.String(), "Proceed? [y/N]")
		})
	}
}

func TestDelete_InteractiveConfirmation(t *testing.T) {
	orig := stdinIsTerminal
	stdinIsTerminal = func(io.Reader) bool { return true }
	t.Cleanup(func() { stdinIsTerminal = orig })
	t.Setenv("FINPROD_HOME", t.TempDir())
	t.Setenv("FINPROD_LOG_LEVEL", "error")

	store := mockapi.NewStore(
		product.Product{ID: "abc", Name: "Savings account"},
		product.Product{ID: "def", Name: "Credit card"},
	)
	srv := httptest.NewServer(mockapi.NewServer(store).Handler())
	t.Cleanup(srv.Close)

	run := func(input string, args ...string) (string, error) {
		var out bytes.Buffer
		cmd := NewRootCmd("test")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetIn(strings.NewReader(input))
		cmd.SetArgs(append([]string{"--api-url", srv.URL, "products", "delete"}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("n\n", "abc")
	require.ErrorIs(t, err, ErrDeleteAborted)
	assert.Contains(t, out, `Delete product "Savings account" (abc)? [y/N]`)
	assert.True(t, store.Exists("abc"))

	out, err = run("y\n", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "Product removed successfully")
	assert.False(t, store.Exists("abc"))

	out, err = run("", "def", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.False(t, store.Exists("def"))
}
