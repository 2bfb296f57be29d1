package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/showcase/internal/colors"
	"github.com/cristianoliveira/showcase/internal/content"
)

func sampleProjects() []content.Project {
	return []content.Project{
		{ID: "tidepool", Title: "Tidepool", Rarity: content.RarityLegendary, Year: "2024", Tech: []string{"Go", "WebSockets"}},
		{ID: "glyph", Title: "Glyph: a very small static site generator for notes", Rarity: content.RarityRare, Year: "2021"},
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    FormatterType
		wantErr bool
	}{
		{in: "", want: FormatterTypeTable},
		{in: "table", want: FormatterTypeTable},
		{in: "JSON", want: FormatterTypeJSON},
		{in: "simple", want: FormatterTypeSimple},
		{in: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "table, simple, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatterFactory(t *testing.T) {
	listing := Projects()
	assert.IsType(t, &TableFormatter[content.Project]{}, NewFormatter(FormatterTypeTable, listing))
	assert.IsType(t, &SimpleFormatter[content.Project]{}, NewFormatter(FormatterTypeSimple, listing))
	assert.IsType(t, &JSONFormatter[content.Project]{}, NewFormatter(FormatterTypeJSON, listing))
	assert.IsType(t, &TableFormatter[content.Project]{}, NewFormatter(FormatterType("other"), listing))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeTable, Projects()).Format(sampleProjects(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], colors.Blue))
	assert.Contains(t, lines[0], "RARITY")
	assert.Regexp(t, `^-+$`, lines[1])
	assert.Contains(t, lines[2], "Legendary")
	assert.Contains(t, lines[2], "Go, WebSockets")
	assert.Contains(t, lines[3], "Glyph: a very small stati...")
}

func TestTableFormatterWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(Artworks().Columns...)
	f.ShowHeaders = false

	err := f.Format([]content.Artwork{{ID: "koi", Title: "Koi", Category: "Ink", Likes: 42}}, &buf)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "    42  Koi")
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Posts().Columns...).Format(nil, &buf))
	assert.Empty(t, buf.String())
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeSimple, Projects()).Format(sampleProjects(), &buf))
	assert.Equal(t, "tidepool - Tidepool [Legendary]\nglyph - Glyph: a very small static site generator for notes [Rare]\n", buf.String())
}

func TestSimplePostsUseParsedDate(t *testing.T) {
	var buf bytes.Buffer
	posts := []content.BlogPost{
		{Slug: "a", Title: "Hello", Date: "2024-03-01T10:00:00.000Z"},
		{Slug: "b", Title: "Odd", Date: "someday"},
	}
	require.NoError(t, NewFormatter(FormatterTypeSimple, Posts()).Format(posts, &buf))
	assert.Equal(t, "2024-03-01 - Hello\nsomeday - Odd\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeJSON, Projects()).Format(sampleProjects(), &buf))

	var got []content.Project
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "tidepool", got[0].ID)

	buf.Reset()
	require.NoError(t, NewFormatter(FormatterTypeJSON, Artworks()).Format(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "ab  ", formatString("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", formatString("ab", 4, AlignRight))
	assert.Equal(t, " ab ", formatString("ab", 4, AlignCenter))
	assert.Equal(t, "abcdef", formatString("abcdef", 4, AlignLeft))
	assert.Equal(t, "é   ", formatString("é", 4, AlignLeft))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
	assert.Equal(t, "ñañ...", truncateString("ñañañañaña", 6))
}
