package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareTwoStrings_Identical(t *testing.T) {
	assert.Equal(t, 1.0, CompareTwoStrings("SAN JOSE CENTRAL", "SAN JOSE CENTRAL"))
}

func TestCompareTwoStrings_IdenticalAfterWhitespaceStripping(t *testing.T) {
	assert.Equal(t, 1.0, CompareTwoStrings("SAN JOSE", "SANJOSE"))
}

func TestCompareTwoStrings_ShortStrings(t *testing.T) {
	assert.Equal(t, 0.0, CompareTwoStrings("AB", ""))
	assert.Equal(t, 0.0, CompareTwoStrings("A", "B"))
	assert.Equal(t, 0.0, CompareTwoStrings("", "LIMON"))
	assert.Equal(t, 1.0, CompareTwoStrings("", ""))
}

func TestCompareTwoStrings_NearIdenticalAddressesCrossThreshold(t *testing.T) {
	score := CompareTwoStrings("SAN JOSE CENTRAL AVENIDA 2", "SAN JOSE CENTRAL AVENIDA 3")
	assert.GreaterOrEqual(t, score, 0.7)
}

func TestCompareTwoStrings_DifferentAddressesStayBelowThreshold(t *testing.T) {
	score := CompareTwoStrings("SAN JOSE CENTRAL", "LIMON PUERTO")
	assert.Less(t, score, 0.7)
}

func TestCompareTwoStrings_OverlapIsConsumedOnce(t *testing.T) {
	// "aaaa" has three "aa" bigrams, "aa" has one; overlap must count one,
	// not three.
	score := CompareTwoStrings("aaaa", "aax")
	assert.InDelta(t, 2.0*1/(4+3-2), score, 1e-9)
}
