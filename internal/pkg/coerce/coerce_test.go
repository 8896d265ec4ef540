package coerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, 123456.5, Number("1,23,456.50"))
	assert.Equal(t, 10000000.0, Number("1,00,00,000"))
	assert.Equal(t, 4500.0, Number("Rs. 4,500/-"))
	assert.Equal(t, 4500.0, Number("4,500/-"))
	assert.Equal(t, 125000.0, Number("Rs.1,25,000/- incl. GST"))
	assert.Equal(t, -12.5, Number("-12.5"))
	assert.Equal(t, 42.0, Number(42.0))
	assert.Equal(t, 7.0, Number(json.Number("7")))
	assert.Equal(t, 0.0, Number(nil))
	assert.Equal(t, 0.0, Number(""))
	assert.Equal(t, 0.0, Number("N/A"))
	assert.Equal(t, 1.2, Number("1.2.3"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "Pune", String("  Pune \n"))
	assert.Equal(t, "10000000", String(10000000.0))
}

func TestInt_OnlyNumericValues(t *testing.T) {
	assert.Equal(t, 42, Int(42.0))
	assert.Equal(t, 42, Int(json.Number("42")))
	assert.Equal(t, 0, Int("42"))
	assert.Equal(t, 0, Int(nil))
}
