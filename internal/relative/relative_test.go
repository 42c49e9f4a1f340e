package relative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		src  string
		dst  string
		want string
	}{
		{
			desc: "child",
			src:  "",
			dst:  "loops/index.html",
			want: "loops/index.html",
		},
		{
			desc: "sibling",
			src:  "loops",
			dst:  "arrays",
			want: "../arrays",
		},
		{
			desc: "asset from lesson",
			src:  "loops",
			dst:  "_/css/main.css",
			want: "../_/css/main.css",
		},
		{
			desc: "parent",
			src:  "foo/bar/baz/qux",
			dst:  "foo/bar",
			want: "../..",
		},
		{
			desc: "cousin",
			src:  "foo/bar/baz/qux/quux",
			dst:  "foo/a/b/c/d/e",
			want: "../../../../a/b/c/d/e",
		},
		{
			desc: "absolute",
			src:  "/foo/bar/baz",
			dst:  "/a/b/c",
			want: "../../../a/b/c",
		},
		{
			desc: "trailing slash src",
			src:  "foo/bar/",
			dst:  "foo/baz/qux",
			want: "../baz/qux",
		},
		{
			desc: "root",
			src:  "foo/bar/baz",
			dst:  "",
			want: "../../..",
		},
		{
			desc: "same",
			src:  "loops",
			dst:  "loops",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Path(tt.src, tt.dst))
		})
	}
}

func TestPath_mixed(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Path("/foo", "bar") })
}

func TestDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, dst string
		want     string
	}{
		{"", "", "./"},
		{"", "loops", "loops/"},
		{"loops", "", "../"},
		{"loops", "loops", "./"},
		{"loops", "arrays/", "../arrays/"},
	}

	for _, tt := range tests {
		t.Run(tt.src+"->"+tt.dst, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Dir(tt.src, tt.dst))
		})
	}
}
