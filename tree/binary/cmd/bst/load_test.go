package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	file := writeFile(t, "numbers.txt", "15 10 20\n8 12\t18 30 16 19\n")

	stdout, _, err := run(t, "load", file)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"        30\n"+
		"    20\n"+
		"            19\n"+
		"        18\n"+
		"            16\n"+
		"15\n"+
		"        12\n"+
		"    10\n"+
		"        8\n"+
		"42 is in the BST: false\n"+
		"19 is in the BST: true\n", stdout)
}

func TestLoad_QueriesAndDeletes(t *testing.T) {
	file := writeFile(t, "numbers.txt", "15 10 20 8 12 18 30 16 19")

	stdout, _, err := run(t, "load", file, "-q", "20", "-q", "19,8", "-d", "20")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stdout, ""+
		"20 is in the BST: false\n"+
		"19 is in the BST: true\n"+
		"8 is in the BST: true\n"), stdout)
	assert.Contains(t, stdout, "    19\n        18\n")
}

func TestLoad_Duplicates(t *testing.T) {
	a := writeFile(t, "a.txt", "5 3 8")
	b := writeFile(t, "b.txt", "3 9")

	stdout, stderr, err := run(t, "load", a, b, "--log-format", "json", "-q", "9")
	require.NoError(t, err)

	assert.Contains(t, stdout, "9 is in the BST: true")
	assert.Contains(t, stderr, `"message":"duplicate value skipped"`)
	assert.Contains(t, stderr, `"key":3`)
	assert.Contains(t, stderr, filepath.Base(b))
}

func TestLoad_Errors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "1 2 three")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no files",
			args: []string{"load"},
			want: "requires at least 1 arg",
		},
		{
			name: "missing file",
			args: []string{"load", filepath.Join(t.TempDir(), "nope.txt")},
			want: "cannot read file",
		},
		{
			name: "not a number",
			args: []string{"load", bad},
			want: `value "three" is not a number`,
		},
		{
			name: "bad workers",
			args: []string{"load", bad, "--workers", "0"},
			want: "--workers must be at least 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadAll(t *testing.T) {
	var names []string
	var want [][]int
	for i := 0; i < 20; i++ {
		names = append(names, writeFile(t, "f.txt", strings.Repeat("7 ", i)))
		want = append(want, nil)
		for j := 0; j < i; j++ {
			want[i] = append(want[i], 7)
		}
	}

	got, err := readAll(context.Background(), names, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := readAll(ctx, []string{writeFile(t, "f.txt", "1")}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(strings.NewReader("  -3 0\n\n 42\t7 "))
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 0, 42, 7}, keys)

	keys, err = parseKeys(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys(strings.NewReader("1 2.5"))
	assert.EqualError(t, err, `value "2.5" is not a number`)
}
