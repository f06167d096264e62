package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFid_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Fid
		wantErr bool
	}{
		{
			name:  "number",
			input: `12345`,
			want:  12345,
		},
		{
			name:  "legacy string",
			input: `"12345"`,
			want:  12345,
		},
		{
			name:  "string with surrounding whitespace",
			input: `" 42 "`,
			want:  42,
		},
		{
			name:    "non-numeric string",
			input:   `"abc"`,
			wantErr: true,
		},
		{
			name:    "float",
			input:   `1.5`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Fid
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFid_MarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(Fid(777))

	require.NoError(t, err)
	assert.Equal(t, "777", string(data))
}

func TestParseFid(t *testing.T) {
	fid, err := ParseFid("99")
	require.NoError(t, err)
	assert.Equal(t, Fid(99), fid)

	_, err = ParseFid("not-a-fid")
	assert.Error(t, err)
}
