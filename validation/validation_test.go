package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name       string `json:"name" validate:"required,min=2"`
	Difficulty string `json:"difficulty" validate:"required,difficulty"`
	Avatar     string `json:"avatar_url" validate:"omitempty,url"`
}

func TestCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		msgs := Check(sample{Name: "Ana", Difficulty: "Easy"})
		assert.Nil(t, msgs)
	})

	t.Run("DifficultyEnum", func(t *testing.T) {
		for _, d := range []string{"Easy", "Medium", "Hard"} {
			assert.Nil(t, Check(sample{Name: "Ana", Difficulty: d}), d)
		}

		msgs := Check(sample{Name: "Ana", Difficulty: "Brutal"})
		require.Len(t, msgs, 1)
		assert.Equal(t, "difficulty must be one of Easy, Medium or Hard", msgs[0])
	})

	t.Run("UsesJSONFieldNames", func(t *testing.T) {
		msgs := Check(sample{Difficulty: "Easy"})
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "name")
	})

	t.Run("URL", func(t *testing.T) {
		assert.Nil(t, Check(sample{Name: "Ana", Difficulty: "Easy", Avatar: "https://example.com/a.png"}))
		assert.NotNil(t, Check(sample{Name: "Ana", Difficulty: "Easy", Avatar: "not a url"}))
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		msgs := Check(sample{})
		assert.Len(t, msgs, 2)
	})
}
