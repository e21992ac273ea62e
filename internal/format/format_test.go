package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "07 Mar 2026", Date(ts))
	assert.Equal(t, "-", Date(time.Time{}))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "07 Mar 2026 14:30", DateTime(ts))
	assert.Equal(t, "-", DateTime(time.Time{}))
}

func TestAmount_KnownCurrency(t *testing.T) {
	got := Amount(123456, "USD", "en")
	assert.Contains(t, got, "1,234.56")
	assert.Contains(t, got, "$")
}

func TestAmount_UnknownCurrencyFallsBack(t *testing.T) {
	assert.Equal(t, "12.34 ???", Amount(1234, "???", "en"))
}

func TestAmount_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	got := Amount(500, "EUR", "not a locale")
	assert.Contains(t, got, "5.00")
}
