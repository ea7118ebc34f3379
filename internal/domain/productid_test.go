package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveProductID_KnownValues(t *testing.T) {
	// Values cross-checked against the web client's hash implementation.
	tests := []struct {
		name string
		want int64
	}{
		{"", 0},
		{"a", 97},
		{"Widget", 1704180124},
		{"Wireless Mouse", 133233245},
		{"Smart Watch", 310056072},
		{`Laptop Pro 15"`, 1500207685},
		{"product-1", 1051831597},
		{"product-2", 1051831596},
		{"Gaming Keyboard RGB Mechanical Switch Edition", 890197800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveProductID(tt.name))
		})
	}
}

func TestDeriveProductID_NonASCII(t *testing.T) {
	// Accented characters contribute their UTF-16 code unit, not bytes.
	assert.Equal(t, int64(2095405773), DeriveProductID("café au lait"))
}

func TestDeriveProductID_LongNameWrapsAround(t *testing.T) {
	// Long names overflow 32 bits many times over; the result must still be
	// stable and non-negative.
	got := DeriveProductID(strings.Repeat("x", 40))
	assert.Equal(t, int64(847293440), got)
}

func TestDeriveProductID_Deterministic(t *testing.T) {
	first := DeriveProductID("Bluetooth Speaker")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DeriveProductID("Bluetooth Speaker"))
	}
}

func TestDeriveProductID_NeverNegative(t *testing.T) {
	names := []string{"", "a", "zz", "!!!", "Ürün Adı", strings.Repeat("q", 200)}
	for _, n := range names {
		assert.GreaterOrEqual(t, DeriveProductID(n), int64(0), "name %q", n)
	}
}
