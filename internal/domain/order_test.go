package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLines(t *testing.T) {
	testCases := map[string]struct {
		lines       []OrderLine
		expectError bool
	}{
		"should accept a well-formed line list": {
			lines: []OrderLine{
				{DishID: 1, Quantity: 2},
				{DishID: 3, Quantity: 1},
			},
		},
		"should reject an empty order": {
			lines:       nil,
			expectError: true,
		},
		"should reject a line without a dish id": {
			lines:       []OrderLine{{DishID: 0, Quantity: 1}},
			expectError: true,
		},
		"should reject a line with zero quantity": {
			lines:       []OrderLine{{DishID: 1, Quantity: 0}},
			expectError: true,
		},
		"should reject a negative quantity": {
			lines:       []OrderLine{{DishID: 1, Quantity: -2}},
			expectError: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := ValidateLines(tc.lines)
			if tc.expectError {
				require.Error(t, err)
				assert.Equal(t, KindInvalidArgument, KindOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestComputeTotal(t *testing.T) {
	testCases := map[string]struct {
		lines           []OrderLine
		discountPercent float64
		expected        Totals
	}{
		"should sum lines and apply a percentage discount": {
			lines: []OrderLine{
				{UnitPrice: 10, Quantity: 2},
				{UnitPrice: 5, Quantity: 3},
			},
			discountPercent: 10,
			expected:        Totals{Subtotal: 35, DiscountAmount: 3.5, Total: 31.5},
		},
		"should leave the total untouched without a discount": {
			lines: []OrderLine{
				{UnitPrice: 12.5, Quantity: 1},
			},
			expected: Totals{Subtotal: 12.5, DiscountAmount: 0, Total: 12.5},
		},
		"should handle a full discount": {
			lines: []OrderLine{
				{UnitPrice: 8, Quantity: 2},
			},
			discountPercent: 100,
			expected:        Totals{Subtotal: 16, DiscountAmount: 16, Total: 0},
		},
		"should return zeros for an empty cart": {
			lines:    nil,
			expected: Totals{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := ComputeTotal(tc.lines, tc.discountPercent)
			assert.InDelta(t, tc.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.expected.DiscountAmount, got.DiscountAmount, 1e-9)
			assert.InDelta(t, tc.expected.Total, got.Total, 1e-9)
		})
	}
}
