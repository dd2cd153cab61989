package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandSource(t *testing.T) {
	tests := []struct {
		cmdline  string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{"apt-cache show 'librust-*'", "apt-cache", []string{"show", "librust-*"}, false},
		{"dpkg -l", "dpkg", []string{"-l"}, false},
		{`sh -c "cat /tmp/x"`, "sh", []string{"-c", "cat /tmp/x"}, false},
		{"dpkg-query -W -f '${Package}' $PKG", "dpkg-query", []string{"-W", "-f", "${Package}", "$PKG"}, false},
		{"", "", nil, true},
		{"apt-cache show 'unterminated", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.cmdline, func(t *testing.T) {
			got, err := NewCommandSource(tt.cmdline)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.name)
			assert.Equal(t, tt.wantArgs, got.args)
		})
	}
}

func TestCommandSource_Fetch(t *testing.T) {
	src, err := NewCommandSource("echo 'Package: librust-foo-dev'")
	require.NoError(t, err)

	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Package: librust-foo-dev\n", out)
}

func TestCommandSource_FetchIgnoresExitStatus(t *testing.T) {
	src, err := NewCommandSource("sh -c 'echo partial; exit 100'")
	require.NoError(t, err)

	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "partial\n", out)
}

func TestCommandSource_LaunchFailure(t *testing.T) {
	src, err := NewCommandSource("debcrates-no-such-tool --version")
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolLaunch))
}

func TestFileSource_Fetch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/captures/dpkg.txt", []byte("ii  librust-foo-dev\n"), 0644))

	src, err := NewFileSource(fs, "/captures/dpkg.txt")
	require.NoError(t, err)

	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ii  librust-foo-dev\n", out)

	missing, err := NewFileSource(fs, "/captures/missing.txt")
	require.NoError(t, err)
	_, err = missing.Fetch(context.Background())
	assert.Error(t, err)
}

func TestDecodeLossy(t *testing.T) {
	assert.Equal(t, "plain", decodeLossy([]byte("plain")))
	assert.Equal(t, "a�b", decodeLossy([]byte{'a', 0xff, 'b'}))
}
