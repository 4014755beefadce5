package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-manager/config"
	"restaurant-manager/menu-svc/internal/domain"
	"restaurant-manager/menu-svc/internal/service"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    startup
		wantErr string
	}{
		{name: "no args", args: nil, wantErr: usage},
		{name: "name only", args: []string{"Diner"}, wantErr: usage},
		{name: "defaults to text", args: []string{"Diner", "menu.txt"}, want: startup{"Diner", "menu.txt", domain.FormatText}},
		{name: "new menu", args: []string{"Diner", ""}, want: startup{"Diner", "", domain.FormatText}},
		{name: "object flag", args: []string{"Diner", "menu.bin", "true"}, want: startup{"Diner", "menu.bin", domain.FormatObject}},
		{name: "text flag", args: []string{"Diner", "menu.txt", "false"}, want: startup{"Diner", "menu.txt", domain.FormatText}},
		{name: "bad flag", args: []string{"Diner", "menu.txt", "maybe"}, wantErr: `isObject must be true or false, got "maybe"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := parseArgs(testCase.args)
			if testCase.wantErr != "" {
				assert.EqualError(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestRun_NewMenuSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.txt")
	script := strings.Join([]string{
		`add "Cheese Burger" MAIN 1 650 8.99 3.10`,
		`order "Cheese Burger" 2`,
		`write "` + path + `"`,
		`quit`,
	}, "\n")
	var out bytes.Buffer

	err := run(context.Background(), []string{"Diner", ""}, strings.NewReader(script), &out, zerolog.Nop(), service.Options{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Item Cheese Burger added successfully.")
	assert.Contains(t, out.String(), "2 Cheese Burgers successfully ordered.")
	assert.Contains(t, out.String(), "Text file "+path+" written successfully.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "restaurant,Diner\n"))

	out.Reset()
	err = run(context.Background(), []string{"Renamed", path}, strings.NewReader("profit\nnames\n"), &out, zerolog.Nop(), service.Options{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The total profit of restaurant Renamed is $11.78.")
	assert.Contains(t, out.String(), "Cheese Burger\n")
}

func TestRun_StartupFailures(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.bin")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an object file"), 0o644))

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"missing file", []string{"Diner", filepath.Join(dir, "missing.txt")}, domain.ErrIO},
		{"corrupt object file", []string{"Diner", corrupt, "true"}, domain.ErrFileFormat},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), testCase.args, strings.NewReader("quit\n"), &out, zerolog.Nop(), service.Options{})

			assert.ErrorIs(t, err, testCase.target)
			assert.ErrorContains(t, err, "Problem creating Restaurant - exiting program")
			assert.Empty(t, out.String())
		})
	}
}

func TestSideChannels_DisabledByDefault(t *testing.T) {
	opts, closeAll := sideChannels(context.Background(), &config.Config{}, zerolog.Nop())
	defer closeAll()

	assert.Nil(t, opts.Mirror)
	assert.Nil(t, opts.Stats)
	assert.Nil(t, opts.Publisher)
	assert.NotNil(t, opts.Cards)
	assert.NotNil(t, opts.OnSideEffectError)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "menu-svc")
}
