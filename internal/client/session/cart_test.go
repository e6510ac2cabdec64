package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/client/storage/boltdb"
	"github.com/iudanet/gophstore/internal/models"
)

func hoodie() models.CartLine {
	return models.CartLine{
		ProductID: 1,
		Name:      "Classic Red Hoodie",
		UnitPrice: 10000,
		Image:     "https://i.imgur.com/abc.jpeg",
		Category:  "Clothes",
	}
}

// TestStore_AddToCart_MergesSameProduct: повторное добавление того же
// товара увеличивает количество, а не создает дубликат
func TestStore_AddToCart_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 2))
	require.NoError(t, store.AddToCart(ctx, hoodie(), 1))

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].ProductID)
	assert.Equal(t, 10000, cart[0].UnitPrice)
	assert.Equal(t, 3, cart[0].Quantity)
}

// TestStore_AddToCart_DefaultQuantity: qty <= 0 означает одну единицу
func TestStore_AddToCart_DefaultQuantity(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 0))

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

// TestStore_AddToCart_QuantitySums: сумма количеств по серии добавлений
func TestStore_AddToCart_QuantitySums(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	quantities := []int{1, 3, 2, 1}
	expected := 0
	for _, q := range quantities {
		require.NoError(t, store.AddToCart(ctx, hoodie(), q))
		expected += q
	}

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, expected, cart[0].Quantity)
}

// TestStore_AddToCart_ClampsToMaxStock: количество не превышает известный остаток
func TestStore_AddToCart_ClampsToMaxStock(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	limited := hoodie()
	limited.MaxStock = 3

	require.NoError(t, store.AddToCart(ctx, limited, 2))
	require.NoError(t, store.AddToCart(ctx, limited, 5))

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 2))

	// Положительное количество устанавливается точно
	require.NoError(t, store.UpdateQuantity(ctx, 1, 7))
	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)

	// Обновление отсутствующего товара возвращает ошибку
	err := store.UpdateQuantity(ctx, 999, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the cart")

	// qty <= 0 удаляет позицию, а не хранит ноль
	require.NoError(t, store.UpdateQuantity(ctx, 1, 0))
	assert.Empty(t, store.Cart())
}

func TestStore_UpdateQuantity_ClampsToMaxStock(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	limited := hoodie()
	limited.MaxStock = 4
	require.NoError(t, store.AddToCart(ctx, limited, 1))

	require.NoError(t, store.UpdateQuantity(ctx, 1, 10))
	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestStore_RemoveFromCart(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 1))
	sneakers := models.CartLine{ProductID: 2, Name: "Sneakers", UnitPrice: 90}
	require.NoError(t, store.AddToCart(ctx, sneakers, 1))

	require.NoError(t, store.RemoveFromCart(ctx, 1))

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].ProductID)

	// Удаление отсутствующего товара безусловно успешно
	require.NoError(t, store.RemoveFromCart(ctx, 999))
}

func TestStore_ClearCart(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 2))
	require.NoError(t, store.ClearCart(ctx))

	assert.Empty(t, store.Cart())
	assert.Equal(t, 0, store.CartTotal())
	assert.Equal(t, 0, store.CartItemCount())
}

func TestStore_CartTotals(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	require.NoError(t, store.AddToCart(ctx, hoodie(), 2))
	require.NoError(t, store.AddToCart(ctx, models.CartLine{ProductID: 2, Name: "Sneakers", UnitPrice: 90}, 3))

	assert.Equal(t, 2*10000+3*90, store.CartTotal())
	assert.Equal(t, 5, store.CartItemCount())
}

// TestStore_ConcurrentAddToCart: перекрывающиеся добавления не теряют
// обновлений: мутации сериализуются мьютексом
func TestStore_ConcurrentAddToCart(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)
	store := newTestStore(t, remote.server.URL)

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AddToCart(ctx, hoodie(), 1))
		}()
	}
	wg.Wait()

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, goroutines, cart[0].Quantity)
}

// TestStore_CartMutation_Persisted: каждая мутация сразу пишет снимок
func TestStore_CartMutation_Persisted(t *testing.T) {
	ctx := context.Background()
	remote := newFakeCommerceAPI(t)

	dbPath := filepath.Join(t.TempDir(), "persist_test.db")
	st, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, st.Close())
	}()

	store, err := New(ctx, clientapi.NewClient(remote.server.URL), st)
	require.NoError(t, err)
	require.NoError(t, store.AddToCart(ctx, hoodie(), 2))

	// Читаем снимок напрямую из хранилища
	clientID, err := st.ClientID(ctx)
	require.NoError(t, err)

	lines, err := st.GetCart(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}
