package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/procnote/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			want: params{
				OutputDir:   "_site",
				Home:        "/",
				LineNumbers: true,
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-catalog", "notes/catalog.yaml",
				"-debug=log.txt",
				"-out", "build/site",
				"-home", "/procnote/",
				"-inline-styles",
				"-line-numbers=false",
				"-style", "monokai",
				"-pagefind",
			},
			want: params{
				Catalog:      "notes/catalog.yaml",
				Debug:        "log.txt",
				OutputDir:    "build/site",
				Home:         "/procnote/",
				InlineStyles: true,
				Style:        "monokai",
				Pagefind:     "-",
			},
		},
		{
			desc: "pagefind path",
			give: []string{"-pagefind=bin/pagefind"},
			want: params{
				OutputDir:   "_site",
				Home:        "/",
				LineNumbers: true,
				Pagefind:    "bin/pagefind",
			},
		},
		{
			desc: "browse",
			give: []string{"-browse", "-debug"},
			want: params{
				OutputDir:   "_site",
				Home:        "/",
				LineNumbers: true,
				Browse:      true,
				Debug:       "-",
			},
		},
		{
			desc: "browse from lesson",
			give: []string{"-browse", "loops"},
			want: params{
				OutputDir:   "_site",
				Home:        "/",
				LineNumbers: true,
				Browse:      true,
				Start:       "loops",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    []string
		wantErr error
		wantMsg string
	}{
		{
			desc:    "lesson without browse",
			give:    []string{"loops"},
			wantErr: errInvalidArguments,
			wantMsg: "requires -browse",
		},
		{
			desc:    "too many arguments",
			give:    []string{"-browse", "loops", "arrays"},
			wantErr: errInvalidArguments,
			wantMsg: "Too many arguments",
		},
		{
			desc:    "browse and pagefind",
			give:    []string{"-browse", "-pagefind"},
			wantErr: errInvalidArguments,
			wantMsg: "cannot be used together",
		},
		{
			desc:    "help",
			give:    []string{"-h"},
			wantErr: errHelp,
			wantMsg: "USAGE: procnote",
		},
		{
			desc:    "help topic",
			give:    []string{"-help=config"},
			wantErr: errHelp,
			wantMsg: "PROCNOTE_",
		},
		{
			desc:    "help topic as argument",
			give:    []string{"-h", "catalog"},
			wantErr: errHelp,
			wantMsg: "A catalog is a YAML file",
		},
		{
			desc:    "unknown help topic",
			give:    []string{"-help=nope"},
			wantErr: errHelp,
			wantMsg: `unknown help topic "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, stderr.String(), tt.wantMsg)
		})
	}
}

func TestCLIParser_version(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	_, err := (&cliParser{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-version"})
	assert.ErrorIs(t, err, errHelp)
	assert.Equal(t, "procnote "+_version+"\n", stdout.String())
}

func TestCLIParser_configFile(t *testing.T) {
	t.Parallel()

	config := filepath.Join(t.TempDir(), "procnote.conf")
	require.NoError(t, os.WriteFile(config, []byte(
		"# site settings\n"+
			"out public\n"+
			"home /notes/\n"+
			"inline-styles\n"+
			"line-numbers false\n",
	), 0o644))

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-config", config, "-out", "override"})
	require.NoError(t, err)

	assert.Equal(t, "override", got.OutputDir, "command line must win")
	assert.Equal(t, "/notes/", got.Home)
	assert.True(t, got.InlineStyles)
	assert.False(t, got.LineNumbers)
}

func TestCLIParser_env(t *testing.T) {
	t.Setenv("PROCNOTE_OUT", "from-env")
	t.Setenv("PROCNOTE_LINE_NUMBERS", "false")

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env", got.OutputDir)
	assert.False(t, got.LineNumbers)
}
