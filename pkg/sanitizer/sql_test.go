package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func TestSanitizeSQL(t *testing.T) {
	t.Parallel()

	t.Run("removes injection metacharacters and keywords", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.SanitizeSQL("1; DROP TABLE users; --")
		assert.NotContains(t, result, ";")
		assert.NotContains(t, result, "--")
		assert.NotContains(t, result, "DROP")
	})

	t.Run("removes keywords in any casing", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.SanitizeSQL("x' uNiOn SeLeCt password from users")
		assert.NotContains(t, result, "'")
		assert.NotContainsf(t, result, "uNiOn", "keyword survived: %q", result)
		assert.NotContainsf(t, result, "SeLeCt", "keyword survived: %q", result)
	})

	t.Run("removes block comments with content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a  b", sanitizer.SanitizeSQL("a /* hidden */ b"))
	})

	t.Run("keeps benign text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "OReilly and sons", sanitizer.SanitizeSQL("O'Reilly and sons"))
	})

	t.Run("keyword must match whole word", func(t *testing.T) {
		t.Parallel()

		// "dropped" contains "drop" but is not the keyword.
		assert.Equal(t, "dropped selection", sanitizer.SanitizeSQL("dropped selection"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", sanitizer.SanitizeSQL(""))
	})
}
