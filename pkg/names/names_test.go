package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNames(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      []string
		wantError string
	}{
		{
			name:    "one_name_per_line",
			content: "John Smith\nJane Doe\n",
			want:    []string{"John Smith", "Jane Doe"},
		},
		{
			name:    "blank_lines_ignored",
			content: "\nJohn Smith\n\n\nJane Doe\n\n",
			want:    []string{"John Smith", "Jane Doe"},
		},
		{
			name:    "whitespace_trimmed",
			content: "  John Smith \t\n",
			want:    []string{"John Smith"},
		},
		{
			name:    "duplicates_kept",
			content: "movie\nmovie\n",
			want:    []string{"movie", "movie"},
		},
		{
			name:    "no_trailing_newline",
			content: "Jane Doe",
			want:    []string{"Jane Doe"},
		},
		{
			name:      "empty_file_errors",
			content:   "",
			wantError: "no names",
		},
		{
			name:      "only_blank_lines_errors",
			content:   "\n \n\t\n",
			wantError: "no names",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(writeNames(t, tt.content))
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening names file")
}
