package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string, price float64) CatalogItem {
	return CatalogItem{ID: id, Name: "Class " + id, Price: price}
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	item := testItem("c1_i1", 25)

	cart := AddToCart(nil, item)
	cart = AddToCart(cart, item)

	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 50.0, CartTotal(cart))
}

func TestAddToCartDoesNotMutateOriginal(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	updated := AddToCart(cart, testItem("c1_i1", 25))

	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 2, updated[0].Quantity)
}

func TestUpdateCartQuantity(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	cart = AddToCart(cart, testItem("c2_i1", 30))

	cart = UpdateCartQuantity(cart, "c1_i1", 3)
	require.Len(t, cart, 2)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 105.0, CartTotal(cart))
}

func TestUpdateCartQuantityZeroRemovesEntry(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	cart = UpdateCartQuantity(cart, "c1_i1", 0)

	assert.Empty(t, cart)
}

func TestUpdateCartQuantityUnknownItemIsNoop(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	updated := UpdateCartQuantity(cart, "missing", 5)

	assert.Equal(t, cart, updated)
}

func TestRemoveFromCart(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	cart = AddToCart(cart, testItem("c2_i1", 30))

	cart = RemoveFromCart(cart, "c1_i1")
	require.Len(t, cart, 1)
	assert.Equal(t, "c2_i1", cart[0].ItemID)
}

func TestCartSize(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))
	cart = AddToCart(cart, testItem("c1_i1", 25))
	cart = AddToCart(cart, testItem("c2_i1", 30))

	assert.Equal(t, 3, CartSize(cart))
}

func TestReconcileCartPartitionsByExistence(t *testing.T) {
	catalog := []CatalogItem{testItem("c1_i1", 25), testItem("c3_i1", 40)}

	cart := AddToCart(nil, testItem("c1_i1", 25))
	cart = AddToCart(cart, testItem("c2_i1", 30)) // удалено администратором
	cart = AddToCart(cart, testItem("c3_i1", 40))

	survivors, removed := ReconcileCart(cart, catalog)

	require.Len(t, survivors, 2)
	require.Len(t, removed, 1)
	assert.Equal(t, "c2_i1", removed[0].ItemID)
	// survivors ∪ removed == cart
	assert.Equal(t, len(cart), len(survivors)+len(removed))
}

func TestReconcileCartEmptyCatalogRemovesEverything(t *testing.T) {
	cart := AddToCart(nil, testItem("c1_i1", 25))

	survivors, removed := ReconcileCart(cart, nil)

	assert.Empty(t, survivors)
	require.Len(t, removed, 1)
}
