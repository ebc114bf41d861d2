package queries_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodibot/internal/core/application/usecases/queries"
	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/ports"
	"foodibot/internal/pkg/errs"
)

func TestGetCartSummaryQueryHandler_Handle(t *testing.T) {
	sessionID, err := kernel.NewSessionID("abc-123")
	require.NoError(t, err)

	t.Run("sums quantities and prices at read time", func(t *testing.T) {
		ctx := t.Context()
		sessionCart, err := cart.RestoreCart(sessionID, map[string]int{"burger": 2, "pizza": 1})
		require.NoError(t, err)

		cartRepo := new(mockCartRepository)
		cartRepo.On("Get", mock.Anything, sessionID).Return(sessionCart, nil).Once()

		catalog := new(mockCatalogReader)
		catalog.On("FindItem", mock.Anything, mustItemName(t, "burger")).
			Return(ports.CatalogItem{ID: 1, Name: "Burger", Price: 8.99}, nil).Once()
		catalog.On("FindItem", mock.Anything, mustItemName(t, "pizza")).
			Return(ports.CatalogItem{ID: 2, Name: "Pizza", Price: 12.99}, nil).Once()

		query, err := queries.NewGetCartSummaryQuery(sessionID)
		require.NoError(t, err)

		h := queries.NewGetCartSummaryQueryHandler(cartRepo, catalog)
		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, 3, response.TotalItems)
		require.InDelta(t, 30.97, response.TotalAmount, 0.001)
		require.Equal(t, map[string]int{"burger": 2, "pizza": 1}, response.Items)
	})

	t.Run("missing cart surfaces not found", func(t *testing.T) {
		ctx := t.Context()
		cartRepo := new(mockCartRepository)
		cartRepo.On("Get", mock.Anything, sessionID).
			Return(nil, errs.NewObjectNotFoundError("sessionID", sessionID.String())).Once()

		query, err := queries.NewGetCartSummaryQuery(sessionID)
		require.NoError(t, err)

		h := queries.NewGetCartSummaryQueryHandler(cartRepo, new(mockCatalogReader))
		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("items missing from the catalog price at zero", func(t *testing.T) {
		ctx := t.Context()
		sessionCart, err := cart.RestoreCart(sessionID, map[string]int{"pizza": 1, "ghost": 2})
		require.NoError(t, err)

		cartRepo := new(mockCartRepository)
		cartRepo.On("Get", mock.Anything, sessionID).Return(sessionCart, nil).Once()

		catalog := new(mockCatalogReader)
		catalog.On("FindItem", mock.Anything, mustItemName(t, "pizza")).
			Return(ports.CatalogItem{ID: 2, Name: "Pizza", Price: 12.99}, nil).Once()
		catalog.On("FindItem", mock.Anything, mustItemName(t, "ghost")).
			Return(ports.CatalogItem{}, errs.NewObjectNotFoundError("foodItem", "ghost")).Once()

		query, err := queries.NewGetCartSummaryQuery(sessionID)
		require.NoError(t, err)

		h := queries.NewGetCartSummaryQueryHandler(cartRepo, catalog)
		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, 3, response.TotalItems)
		require.InDelta(t, 12.99, response.TotalAmount, 0.001)
	})

	t.Run("catalog failure surfaces instead of a partial total", func(t *testing.T) {
		ctx := t.Context()
		sessionCart, err := cart.RestoreCart(sessionID, map[string]int{"pizza": 1})
		require.NoError(t, err)

		cartRepo := new(mockCartRepository)
		cartRepo.On("Get", mock.Anything, sessionID).Return(sessionCart, nil).Once()

		catalogErr := errors.New("connection refused")
		catalog := new(mockCatalogReader)
		catalog.On("FindItem", mock.Anything, mustItemName(t, "pizza")).
			Return(ports.CatalogItem{}, catalogErr).Once()

		query, err := queries.NewGetCartSummaryQuery(sessionID)
		require.NoError(t, err)

		h := queries.NewGetCartSummaryQueryHandler(cartRepo, catalog)
		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, catalogErr)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		h := queries.NewGetCartSummaryQueryHandler(new(mockCartRepository), new(mockCatalogReader))
		_, err := h.Handle(t.Context(), queries.GetCartSummaryQuery{})
		require.ErrorIs(t, err, queries.ErrGetCartSummaryQueryIsNotConstructed)
	})
}
