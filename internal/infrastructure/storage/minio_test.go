package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteHost(t *testing.T) {
	signed, err := url.Parse("http://minio:9000/event-planner/exports/e1/guests.csv?X-Amz-Signature=abc")
	require.NoError(t, err)

	assert.Equal(t, signed.String(), rewriteHost(signed, ""))
	assert.Equal(t,
		"https://files.example.com/event-planner/exports/e1/guests.csv?X-Amz-Signature=abc",
		rewriteHost(signed, "https://files.example.com"),
	)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "guests.csv", baseName("exports/e1/guests.csv"))
	assert.Equal(t, "guests.csv", baseName("guests.csv"))
}
