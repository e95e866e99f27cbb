package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeSpeakerName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Narrator", want: "Narrator"},
		{name: "spaces", in: "Mad Dog", want: "Mad_Dog"},
		{name: "parens dropped", in: "Sunny (Sunless)", want: "Sunny_Sunless"},
		{name: "keeps dashes and underscores", in: "cat-speaker_2", want: "cat-speaker_2"},
		{name: "surrounding junk trimmed", in: "  Effie  ", want: "Effie"},
		{name: "empty", in: "", want: "Unknown"},
		{name: "only punctuation", in: "!!!", want: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SafeSpeakerName(tt.in))
		})
	}
}

func TestDisplaySpeakerName(t *testing.T) {
	require.Equal(t, "Mad Dog", DisplaySpeakerName("Mad_Dog"))
	require.Equal(t, "Narrator", DisplaySpeakerName("Narrator"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 40))

	long := "The Dream Realm greeted him with a cold wind and the distant sound of waves"
	got := Truncate(long, 40)
	require.LessOrEqual(t, len([]rune(got)), 38)
	require.Equal(t, "…", got[len(got)-len("…"):])

	// trailing spaces before the cut point are dropped, not kept
	require.Equal(t, "abc…", Truncate("abc    end", 9))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cast.json")
	in := []map[string]string{{"name": "Sunny & Nephis", "voice_note": "<low>"}}

	require.NoError(t, WriteJSON(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Sunny & Nephis")
	require.Contains(t, string(data), "<low>")
	require.Contains(t, string(data), "  \"name\"")

	var out []map[string]string
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}
