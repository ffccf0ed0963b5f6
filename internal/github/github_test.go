package github_test

import (
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/github"
)

func TestAvailableUpdate(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	const url = "https://api.github.com/repos/AAAAAAAAA9a/tarkov-app/releases/latest"
	data := map[string]any{
		"html_url": "https://github.com/AAAAAAAAA9a/tarkov-app/releases/tag/v0.2.0",
		"tag_name": "v0.2.0",
		"name":     "v0.2.0",
	}
	t.Run("should report newer remote version when available", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", url, httpmock.NewJsonResponderOrPanic(200, data))
		v, err := github.AvailableUpdate("AAAAAAAAA9a", "tarkov-app", "0.1.0")
		if assert.NoError(t, err) {
			assert.Equal(t, github.VersionInfo{Local: "0.1.0", Latest: "0.2.0", IsRemoteNewer: true}, v)
		}
	})
	t.Run("should report when remote has no newer version", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", url, httpmock.NewJsonResponderOrPanic(200, data))
		v, err := github.AvailableUpdate("AAAAAAAAA9a", "tarkov-app", "v0.2.0")
		if assert.NoError(t, err) {
			assert.False(t, v.IsRemoteNewer)
		}
	})
	t.Run("should report error when request failed", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", url, httpmock.NewErrorResponder(fmt.Errorf("some error")))
		_, err := github.AvailableUpdate("AAAAAAAAA9a", "tarkov-app", "v0.2.0")
		assert.Error(t, err)
	})
	t.Run("should report error for invalid local version", func(t *testing.T) {
		httpmock.Reset()
		_, err := github.AvailableUpdate("AAAAAAAAA9a", "tarkov-app", "banana")
		assert.Error(t, err)
	})
}

func TestNormalizeVersion(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"v1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3", false},
		{"", "", true},
		{"abc", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := github.NormalizeVersion(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				if assert.NoError(t, err) {
					assert.Equal(t, tc.want, got)
				}
			}
		})
	}
}
