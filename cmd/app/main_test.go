package main

import (
	"bytes"
	"strings"
	"testing"

	httpin "parcel/internal/adapters/in/http"
	"parcel/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuoteCmd(t *testing.T) {
	out, err := execute(t, "quote", "--weight", "500", "--delivery", "standard", "--packing", "BASIC", "--officer")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[4], "50.00")
	assert.Contains(t, lines[5], "150.00")
	assert.Contains(t, lines[7], "total")
	assert.Contains(t, lines[7], "157.50")
}

func TestQuoteCmd_InvalidInput(t *testing.T) {
	_, err := execute(t, "quote", "--weight", "0")
	require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)

	_, err = execute(t, "quote", "--weight", "10", "--delivery", "DRONE")
	require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)

	_, err = execute(t, "quote")
	require.Error(t, err)
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--sub", "OFF-3", "--role", "officer")
	require.NoError(t, err)

	auth, err := httpin.NewAuthenticator("cli-secret")
	require.NoError(t, err)
	principal, err := auth.Principal(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "OFF-3", principal.Identity())
	assert.True(t, principal.IsOfficer())
}

func TestTokenCmd_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "token", "--sub", "CUST-1")
	require.Error(t, err)
}
