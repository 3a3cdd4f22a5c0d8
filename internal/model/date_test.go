package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(1949, time.June, 8, 23, 30, 0, 0, loc)

	got := DateOf(in)

	assert.Equal(t, time.Date(1949, time.June, 8, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDate_UnmarshalJSON_Layouts(t *testing.T) {
	want := time.Date(1949, time.June, 8, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		`"1949-06-08"`,
		`"08-06-1949"`,
		`"1949/06/08"`,
		`"June 8, 1949"`,
		`"Jun 8, 1949"`,
		`"1949-06-08T15:04:05Z"`,
	} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.Equal(t, want, d.Time, in)
	}
}

func TestDate_UnmarshalJSON_EmptyAndNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`19490608`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(1932, time.January, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"1932-01-01"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
