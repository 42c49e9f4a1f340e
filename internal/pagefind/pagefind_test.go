package pagefind

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/procnote/internal/iotest"
)

// _fakeBin is a directory holding a "pagefind" symlink
// to the test binary.
// When invoked under that name, the test binary acts as pagefind
// according to $FAKE_PAGEFIND.
var _fakeBin string

func TestMain(m *testing.M) {
	if name := filepath.Base(os.Args[0]); name == "pagefind" || name == "pagefind.exe" {
		os.Exit(fakePagefind(os.Args[1:]))
	}

	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	exe, err := os.Executable()
	if err != nil {
		log.Print(err)
		return 1
	}

	_fakeBin, err = os.MkdirTemp("", "fake-pagefind")
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() { _ = os.RemoveAll(_fakeBin) }()

	link := filepath.Join(_fakeBin, "pagefind")
	if runtime.GOOS == "windows" {
		link += ".exe"
	}
	if err := os.Symlink(exe, link); err != nil {
		log.Print(err)
		return 1
	}

	return m.Run()
}

// invocation is what the fake pagefind saw on its command line.
type invocation struct {
	Site         string
	OutputSubdir string
	Glob         string
	Verbose      bool
}

func fakePagefind(args []string) int {
	var inv invocation
	fset := flag.NewFlagSet("pagefind", flag.ContinueOnError)
	fset.StringVar(&inv.Site, "site", "", "")
	fset.StringVar(&inv.OutputSubdir, "output-subdir", "", "")
	fset.StringVar(&inv.Glob, "glob", "", "")
	fset.BoolVar(&inv.Verbose, "verbose", false, "")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	switch mode := os.Getenv("FAKE_PAGEFIND"); mode {
	case "record":
		bs, err := json.Marshal(inv)
		if err == nil {
			err = os.WriteFile(os.Getenv("FAKE_PAGEFIND_OUT"), bs, 0o644)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	case "chatty":
		fmt.Println("Running Pagefind")
		fmt.Print("Indexed 3 pages\nDone")
		return 0

	case "fail":
		fmt.Fprintln(os.Stderr, "no pages found")
		return 1

	default:
		fmt.Fprintf(os.Stderr, "unknown FAKE_PAGEFIND %q\n", mode)
		return 1
	}
}

func TestCLI_Index(t *testing.T) {
	t.Setenv("PATH", _fakeBin)
	t.Setenv("FAKE_PAGEFIND", "record")

	site := t.TempDir()

	tests := []struct {
		desc string
		give IndexRequest
		want invocation
	}{
		{
			desc: "defaults",
			give: IndexRequest{SiteDir: site},
			want: invocation{
				Site:         site,
				OutputSubdir: "_/pagefind",
				Verbose:      true,
			},
		},
		{
			desc: "asset subdir",
			give: IndexRequest{SiteDir: site, AssetSubdir: "search"},
			want: invocation{
				Site:         site,
				OutputSubdir: "search",
				Verbose:      true,
			},
		},
		{
			desc: "glob",
			give: IndexRequest{SiteDir: site, Glob: "**/index.html"},
			want: invocation{
				Site:         site,
				OutputSubdir: "_/pagefind",
				Glob:         "**/index.html",
				Verbose:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "invocation.json")
			t.Setenv("FAKE_PAGEFIND_OUT", out)

			c := CLI{Log: log.New(iotest.Writer(t), "", 0)}
			require.NoError(t, c.Index(context.Background(), tt.give))

			bs, err := os.ReadFile(out)
			require.NoError(t, err)

			var got invocation
			require.NoError(t, json.Unmarshal(bs, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLI_Index_logsOutput(t *testing.T) {
	t.Setenv("PATH", _fakeBin)
	t.Setenv("FAKE_PAGEFIND", "chatty")

	var buff bytes.Buffer
	c := CLI{Log: log.New(&buff, "[pagefind] ", 0)}
	require.NoError(t, c.Index(context.Background(), IndexRequest{
		SiteDir: t.TempDir(),
	}))

	assert.Equal(t,
		"[pagefind] Running Pagefind\n"+
			"[pagefind] Indexed 3 pages\n"+
			"[pagefind] Done\n",
		buff.String())
}

func TestCLI_Index_failure(t *testing.T) {
	t.Setenv("FAKE_PAGEFIND", "fail")

	pagefind := filepath.Join(_fakeBin, "pagefind")
	if runtime.GOOS == "windows" {
		pagefind += ".exe"
	}

	var buff bytes.Buffer
	c := CLI{
		Pagefind: pagefind,
		Log:      log.New(&buff, "", 0),
	}
	err := c.Index(context.Background(), IndexRequest{SiteDir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorContains(t, err, "pagefind:")
	assert.Contains(t, buff.String(), "no pages found")
}

func TestCLI_Index_missingSite(t *testing.T) {
	t.Parallel()

	var c CLI
	err := c.Index(context.Background(), IndexRequest{})
	assert.ErrorContains(t, err, "site directory is required")
}
