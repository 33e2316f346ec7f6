package slugify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Customer Feedback", "customer-feedback"},
		{"  fazla   bosluk  ", "fazla-bosluk"},
		{"Anket 2025!", "anket-2025"},
		{"---", ""},
		{"", ""},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.in), "girdi: %q", tc.in)
	}
}

func TestWithSuffixAppendsRandomTail(t *testing.T) {
	first := WithSuffix("Customer Feedback")
	second := WithSuffix("Customer Feedback")

	assert.True(t, strings.HasPrefix(first, "customer-feedback-"), "slug: %s", first)
	assert.Len(t, first, len("customer-feedback-")+suffixLength)
	assert.NotEqual(t, first, second)
}

func TestWithSuffixEmptyTitleStillProducesSlug(t *testing.T) {
	slug := WithSuffix("!!!")
	assert.Len(t, slug, suffixLength)
	assert.NotContains(t, slug, "-")
}
