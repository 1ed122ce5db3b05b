package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_validateAddStock(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		err := validateAddStock(addStockRequest{Symbol: "AAPL", Date: "2020-05-01", Quantity: 2})
		require.NoError(t, err)
	})

	t.Run("symbol too long", func(t *testing.T) {
		err := validateAddStock(addStockRequest{Symbol: "TOOLONG", Date: "2020-05-01", Quantity: 2})
		require.EqualError(t, err, "Symbol has to be under 6 characters long")
	})

	t.Run("bad date format", func(t *testing.T) {
		err := validateAddStock(addStockRequest{Symbol: "AAPL", Date: "01/05/2020", Quantity: 2})
		require.EqualError(t, err, "Please enter past date in format: yyyy-mm-dd")
	})

	t.Run("well-formed impossible date passes the format check", func(t *testing.T) {
		// calendar validity is deliberately not enforced here
		err := validateAddStock(addStockRequest{Symbol: "AAPL", Date: "2020-13-45", Quantity: 2})
		require.NoError(t, err)
	})

	t.Run("quantity must be a positive whole number", func(t *testing.T) {
		err := validateAddStock(addStockRequest{Symbol: "AAPL", Date: "2020-05-01", Quantity: 0})
		require.EqualError(t, err, "Number of shares has to be a positive whole number")
	})
}
