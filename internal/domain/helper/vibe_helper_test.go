package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam-backend/internal/domain/model"
)

func TestVibeSimilarity(t *testing.T) {
	t.Run("identical descriptor sets score 1", func(t *testing.T) {
		a := &model.Venue{Vibe: "cozy, casual"}
		b := &model.Venue{Vibe: "cozy, casual"}
		assert.Equal(t, 1.0, VibeSimilarity(a, b))
	})

	t.Run("empty set on either side scores 0", func(t *testing.T) {
		a := &model.Venue{Vibe: "cozy"}
		b := &model.Venue{}
		assert.Equal(t, 0.0, VibeSimilarity(a, b))
		assert.Equal(t, 0.0, VibeSimilarity(b, a))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := &model.Venue{Vibe: "cozy, loud", Tags: "bar"}
		b := &model.Venue{Vibe: "cozy", Tags: "bar, dive"}
		assert.Equal(t, VibeSimilarity(a, b), VibeSimilarity(b, a))
	})

	t.Run("synonyms fold before comparison", func(t *testing.T) {
		a := &model.Venue{Vibe: "speakeasy"}
		b := &model.Venue{Vibe: "cocktail"}
		assert.Equal(t, 1.0, VibeSimilarity(a, b))
	})

	t.Run("overlap divided by the larger set", func(t *testing.T) {
		a := &model.Venue{Vibe: "cozy, casual"}
		b := &model.Venue{Vibe: "cozy, dive, loud"} // dive folds to casual
		assert.InDelta(t, 2.0/3.0, VibeSimilarity(a, b), 1e-9)
	})

	t.Run("vibe and tags form one set", func(t *testing.T) {
		a := &model.Venue{Vibe: "cozy", Tags: "casual"}
		b := &model.Venue{Vibe: "cozy, casual"}
		assert.Equal(t, 1.0, VibeSimilarity(a, b))
	})
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "cocktail", NormalizeTag("Speakeasy"))
	assert.Equal(t, "cocktail", NormalizeTag("mixology"))
	assert.Equal(t, "date night", NormalizeTag("romantic"))
	assert.Equal(t, "art", NormalizeTag("museum"))
	assert.Equal(t, "music", NormalizeTag("karaoke"))
	assert.Equal(t, "unmapped", NormalizeTag("Unmapped"))
}

func TestVibesArray(t *testing.T) {
	assert.Equal(t, []string{"cozy", "casual"}, VibesArray("Cozy, dive"))
	assert.Nil(t, VibesArray("  "))
	assert.Equal(t, []string{"view"}, VibesArray("rooftop,,"))
}

func TestHasVibeOrTagMatch(t *testing.T) {
	v := &model.Venue{Vibe: "Dim, moody", Tags: "cocktail bar"}

	assert.True(t, HasVibeOrTagMatch(v, []string{"moody"}))
	assert.True(t, HasVibeOrTagMatch(v, []string{"cocktail"}))
	assert.False(t, HasVibeOrTagMatch(v, []string{"sunny"}))
	assert.False(t, HasVibeOrTagMatch(v, []string{""}))
}
