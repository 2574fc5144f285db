package sift_test

import (
	"testing"

	"github.com/fwojciec/sift"
	"github.com/stretchr/testify/assert"
)

func TestAllowList_Allows(t *testing.T) {
	t.Parallel()

	t.Run("empty list allows everything", func(t *testing.T) {
		t.Parallel()

		var allow sift.AllowList

		assert.True(t, allow.Allows("https://anything.test/page"))
		assert.True(t, allow.Allows("not a url at all"))
		assert.True(t, sift.IsAllowed("/relative", sift.NewAllowList()))
	})

	t.Run("matches exact host and subdomains", func(t *testing.T) {
		t.Parallel()

		allow := sift.NewAllowList("example.com")

		assert.True(t, allow.Allows("https://example.com/"))
		assert.True(t, allow.Allows("https://sub.example.com/page"))
		assert.True(t, allow.Allows("http://deep.sub.example.com:8080/x"))
	})

	t.Run("rejects bare substring matches", func(t *testing.T) {
		t.Parallel()

		allow := sift.NewAllowList("example.com")

		assert.False(t, allow.Allows("https://notexample.com/"))
		assert.False(t, allow.Allows("https://example.com.evil.test/"))
		assert.False(t, allow.Allows("https://evil.test/?u=example.com"))
	})

	t.Run("ignores case and a leading www label", func(t *testing.T) {
		t.Parallel()

		allow := sift.NewAllowList("  Example.COM ")

		assert.True(t, allow.Allows("https://WWW.EXAMPLE.com/"))
		assert.True(t, allow.Allows("https://www.sub.example.com/"))
	})

	t.Run("strips only the www label, not leading w characters", func(t *testing.T) {
		t.Parallel()

		allow := sift.NewAllowList("wiki.org")

		assert.True(t, allow.Allows("https://www.wiki.org/"))
		assert.True(t, allow.Allows("https://wiki.org/"))
	})

	t.Run("fails closed on URLs without scheme or host", func(t *testing.T) {
		t.Parallel()

		allow := sift.NewAllowList("example.com")

		assert.False(t, allow.Allows("/relative/path"))
		assert.False(t, allow.Allows("example.com/page"))
		assert.False(t, allow.Allows("mailto:someone@example.com"))
		assert.False(t, allow.Allows("http://[::1"))
	})
}

func TestNewAllowList(t *testing.T) {
	t.Parallel()

	allow := sift.NewAllowList("b.org", "www.A.com", "", "  ", "b.org")

	assert.Equal(t, 2, allow.Len())
	assert.Equal(t, []string{"a.com", "b.org"}, allow.Domains())
}
