package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "Jan", MonthShort(0))
	assert.Equal(t, "Dec", MonthShort(11))
	assert.Equal(t, "M12", MonthShort(12))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "--", Money(0))
	assert.Equal(t, "950.00", Money(950))
	assert.Equal(t, "12,500.00", Money(12500))
	assert.Equal(t, "1,250,000.50", Money(1250000.50))
}

func TestRenderReadiness_Bounds(t *testing.T) {
	assert.Contains(t, RenderReadiness(-5, 8), "  0%")
	assert.Contains(t, RenderReadiness(250, 8), "100%")
	assert.Contains(t, RenderReadiness(50, 8), " 50%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{{"Germany", "100"}, {"FR", "56"}},
	)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "─")
}
