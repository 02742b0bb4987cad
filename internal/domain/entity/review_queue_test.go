package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetCollection(t *testing.T) {
	t.Parallel()

	products, ok := QueueByName("products")
	require.True(t, ok)

	orgOwned := &Submission{ShopID: "shop-1"}
	assert.Equal(t, CollectionShopProducts, products.TargetCollection(orgOwned))

	individual := &Submission{}
	assert.Equal(t, CollectionProducts, products.TargetCollection(individual))

	// Restaurant promotions land in one collection either way.
	restaurants, ok := QueueByName("restaurants")
	require.True(t, ok)
	assert.Equal(t, CollectionRestaurants, restaurants.TargetCollection(orgOwned))
	assert.Equal(t, CollectionRestaurants, restaurants.TargetCollection(individual))
}

func TestQueueByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"products", "restaurants", "banners"} {
		q, ok := QueueByName(name)
		assert.True(t, ok)
		assert.Equal(t, name, q.Name)
		assert.NotEmpty(t, q.Submissions)
	}

	_, ok := QueueByName("vehicles")
	assert.False(t, ok)
}

func TestOnlyProductQueueFeedsCategoryIndex(t *testing.T) {
	t.Parallel()

	for _, q := range Queues {
		if q.Name == "products" {
			assert.True(t, q.IndexEnabled)
		} else {
			assert.False(t, q.IndexEnabled)
		}
	}
}
