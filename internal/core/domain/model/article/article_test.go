package article_test

import (
	"testing"

	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	t.Run("accepts_sale_price_above_purchase_price", func(t *testing.T) {
		a, err := article.NewArticle(
			kernel.NewUUID(), "ART-001", "Clavier mécanique", 45, 89.9, 15, "Informatique", 20)

		require.NoError(t, err)
		assert.Equal(t, "ART-001", a.Reference())
		assert.InDelta(t, 44.9, a.Margin(), 0.0001)
	})

	t.Run("rejects_sale_price_equal_to_purchase_price", func(t *testing.T) {
		_, err := article.NewArticle(
			kernel.NewUUID(), "ART-001", "Clavier", 45, 45, 0, "", 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "sale price")
	})

	t.Run("rejects_sale_price_below_purchase_price", func(t *testing.T) {
		_, err := article.NewArticle(
			kernel.NewUUID(), "ART-001", "Clavier", 45, 30, 0, "", 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_reference", func(t *testing.T) {
		_, err := article.NewArticle(
			kernel.NewUUID(), "", "Clavier", 45, 89.9, 0, "", 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_designation", func(t *testing.T) {
		_, err := article.NewArticle(
			kernel.NewUUID(), "ART-001", "", 45, 89.9, 0, "", 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_stock", func(t *testing.T) {
		_, err := article.NewArticle(
			kernel.NewUUID(), "ART-001", "Clavier", 45, 89.9, -1, "", 20)

		require.Error(t, err)
	})
}

func TestArticle_Validate(t *testing.T) {
	var a article.Article
	require.ErrorIs(t, a.Validate(), article.ErrArticleIsNotConstructed)
}
