package words

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedbackRow(t *testing.T) {
	t.Parallel()
	row, err := ParseFeedbackRow("ybygb")
	require.NoError(t, err)
	assert.Equal(t, FeedbackRow{Yellow, Black, Yellow, Green, Black}, row)
	assert.Equal(t, "ybygb", row.String())

	for _, bad := range []string{"", "ybyg", "ybygbb", "ybxgb"} {
		_, err := ParseFeedbackRow(bad)
		require.Error(t, err, bad)
	}
}

func TestFeedbackJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(FeedbackRow{Green, Yellow, Black, Black, Black})
	require.NoError(t, err)
	assert.JSONEq(t, `["green","yellow","black","black","black"]`, string(b))

	var row FeedbackRow
	require.NoError(t, json.Unmarshal([]byte(`["black","black","yellow","black","green"]`), &row))
	assert.Equal(t, FeedbackRow{Black, Black, Yellow, Black, Green}, row)

	require.Error(t, json.Unmarshal([]byte(`["grey","black","black","black","black"]`), &row))
}

func TestFeedbackRowJSONLength(t *testing.T) {
	t.Parallel()
	// Short rows must not zero-fill into Black and long rows must not be
	// silently truncated.
	for _, bad := range []string{
		`[]`,
		`["yellow","green"]`,
		`["green","green","green","green","green","green"]`,
	} {
		var row FeedbackRow
		require.Error(t, json.Unmarshal([]byte(bad), &row), bad)
	}
}
