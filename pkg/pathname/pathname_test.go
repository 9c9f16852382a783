package pathname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"posix absolute", "/home/user/Downloads/file.zip", "file.zip"},
		{"posix relative", "Downloads/file.zip", "file.zip"},
		{"posix root entry", "/file.zip", "file.zip"},
		{"windows drive", `C:\Users\me\Downloads\file.zip`, "file.zip"},
		{"windows forward slashes", `C:/Users/me/file.zip`, "file.zip"},
		{"windows unc", `\\nas\share\file.zip`, "file.zip"},
		{"backslash in posix name", `/tmp/odd\name.txt`, `odd\name.txt`},
		{"url", "https://example.com/a/b.iso", "b.iso"},
		{"empty", "", ""},
		{"no separator", "file.zip", "file.zip"},
		{"trailing separator", "/home/user/", "/home/user/"},
		{"windows trailing separator", `C:\Users\`, `C:\Users\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Basename(tt.path))
		})
	}
}

func TestDirname(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"posix absolute", "/home/user/Downloads/file.zip", "/home/user/Downloads"},
		{"posix root entry", "/file.zip", "/"},
		{"posix relative", "Downloads/file.zip", "Downloads"},
		{"windows drive", `C:\Users\me\Downloads\file.zip`, `C:\Users\me\Downloads`},
		{"windows drive root", `D:\file.zip`, `D:\`},
		{"windows unc", `\\nas\share\file.zip`, `\\nas\share`},
		{"empty", "", ""},
		{"no separator", "file.zip", "file.zip"},
		{"trailing separator", "/home/user/", "/home/user/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Dirname(tt.path))
		})
	}
}

func TestIsWindows(t *testing.T) {
	require.True(t, IsWindows(`C:\x`))
	require.True(t, IsWindows(`c:/x`))
	require.True(t, IsWindows(`\\host\share`))
	require.False(t, IsWindows("/c:/x"))
	require.False(t, IsWindows("relative\\path"))
}
