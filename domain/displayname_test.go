package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeProjectDirName(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		homeDir  string
		expected string
	}{
		{"projects subdirectory collapses", "home-u-Projects-myapp", "/home/u", "myapp"},
		{"with leading dash", "-home-u-Projects-myapp", "/home/u", "myapp"},
		{"hidden directory", "home-u--claude", "/home/u", "~/.claude"},
		{"home itself", "home-u", "/home/u", "~/"},
		{"plain home subdirectory", "home-u-docs", "/home/u", "~/docs"},
		{"outside home", "var-tmp-scratch", "/home/u", "var-tmp-scratch"},
		{"nested projects path", "home-u-Projects-org-repo", "/home/u", "org-repo"},
		{"empty decodes to raw", "", "/home/u", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeProjectDirName(tt.encoded, tt.homeDir))
		})
	}
}

func TestDecodeProjectDirName_DashOnlyInputReturnsRaw(t *testing.T) {
	assert.Equal(t, "-", DecodeProjectDirName("-", "/home/u"))
}

func TestShortProjectPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/u/Projects/myapp", "myapp"},
		{"/home/u/docs", "~/docs"},
		{"/home/u", "~"},
		{"/var/tmp", "/var/tmp"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ShortProjectPath(tt.path, "/home/u"))
	}
}
