package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases and collapses whitespace",
			in:   "  Upload   FILES  ",
			want: "upload files",
		},
		{
			name: "strips filler words",
			in:   "search for the products in a catalog",
			want: "search products catalog",
		},
		{
			name: "short descriptions keep fillers",
			in:   "the login",
			want: "the login",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.in))
		})
	}
}

func TestClassify(t *testing.T) {
	classifier := NewClassifier(DefaultTemplateLibrary())

	tests := []struct {
		name string
		in   string
		want FeatureTag
	}{
		{
			name: "authentication keywords",
			in:   "User authentication with social login",
			want: TagAuthentication,
		},
		{
			name: "crud keywords",
			in:   "Create, edit and delete customer records",
			want: TagCRUD,
		},
		{
			name: "api keywords",
			in:   "Expose a REST endpoint with webhook support",
			want: TagAPIIntegration,
		},
		{
			name: "search keywords",
			in:   "Search and filter the product catalog",
			want: TagSearch,
		},
		{
			name: "file keywords",
			in:   "File upload functionality for documents",
			want: TagFileManagement,
		},
		{
			name: "notification keywords",
			in:   "Send email alerts when orders ship",
			want: TagNotification,
		},
		{
			name: "no keyword matches falls back to generic",
			in:   "dashboard overview widgets",
			want: TagGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyTieBreaksByPrecedence(t *testing.T) {
	classifier := NewClassifier(DefaultTemplateLibrary())

	// One authentication keyword and one file keyword: the
	// authentication tag wins because it sits earlier in the
	// precedence order.
	got, err := classifier.Classify("password file")
	require.NoError(t, err)
	assert.Equal(t, TagAuthentication, got)
}

func TestClassifyDeterministic(t *testing.T) {
	classifier := NewClassifier(DefaultTemplateLibrary())

	first, err := classifier.Classify("upload and share documents")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := classifier.Classify("upload and share documents")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	classifier := NewClassifier(DefaultTemplateLibrary())

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := classifier.Classify(in)
		require.Error(t, err)

		var invalid *InvalidInputError
		assert.True(t, errors.As(err, &invalid))
	}
}
