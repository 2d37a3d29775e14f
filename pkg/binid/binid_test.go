package binid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "GKF", Prefix("Green Kloof Farm"))
	assert.Equal(t, "G", Prefix("green"))
	assert.Equal(t, "GKF", Prefix("GKF"))
	assert.Equal(t, "B", Prefix("boplaas 7"))
	assert.Equal(t, "", Prefix(""))
}

func TestAllocateFreshPrefix(t *testing.T) {
	got := Allocate("Green Kloof Farm", 3, nil)
	assert.Equal(t, []string{"GKF00001", "GKF00002", "GKF00003"}, got)
}

func TestAllocateLowercaseFallback(t *testing.T) {
	got := Allocate("green", 2, nil)
	assert.Equal(t, []string{"G00001", "G00002"}, got)
}

func TestAllocateContinuesPastHighestSuffix(t *testing.T) {
	got := Allocate("GKF", 2, []string{"GKF00001", "GKF00003"})
	assert.Equal(t, []string{"GKF00004", "GKF00005"}, got)
}

func TestAllocateIgnoresForeignAndNonNumericIDs(t *testing.T) {
	existing := []string{
		"GKF00007",
		"GKFX0001",  // suffix not all digits
		"GK000099",  // different prefix
		"GKF",       // empty suffix
		"GKF0003a",  // trailing letter
	}
	got := Allocate("GKF", 1, existing)
	assert.Equal(t, []string{"GKF00008"}, got)
}

func TestAllocateZeroOrNegativeCount(t *testing.T) {
	assert.Empty(t, Allocate("GKF", 0, nil))
	assert.Empty(t, Allocate("GKF", -4, []string{"GKF00001"}))
}

func TestAllocateIsPure(t *testing.T) {
	existing := []string{"GKF00002"}
	first := Allocate("GKF", 3, existing)
	second := Allocate("GKF", 3, existing)
	assert.Equal(t, first, second)
}

func TestFormatWidensPastFiveDigits(t *testing.T) {
	assert.Equal(t, "GKF100000", Format("GKF", 100000))

	got := Allocate("GKF", 2, []string{"GKF99999"})
	assert.Equal(t, []string{"GKF100000", "GKF100001"}, got)
}
