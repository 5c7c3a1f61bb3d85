package quran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJuz_Boundaries(t *testing.T) {
	assert.Equal(t, 1, Juz(1, 1))
	assert.Equal(t, 1, Juz(2, 141))
	assert.Equal(t, 2, Juz(2, 142))
	assert.Equal(t, 3, Juz(2, 253))
	assert.Equal(t, 15, Juz(17, 1))
	assert.Equal(t, 30, Juz(78, 1))
	assert.Equal(t, 30, Juz(114, 6))
}

func TestJuz_MidSurah(t *testing.T) {
	// Surah 4 spans juz 4-6
	assert.Equal(t, 4, Juz(4, 1))
	assert.Equal(t, 5, Juz(4, 24))
	assert.Equal(t, 6, Juz(4, 148))
}

func TestHizb(t *testing.T) {
	assert.Equal(t, 1, Hizb(1, 1))
	assert.Equal(t, 3, Hizb(2, 142))
	assert.Equal(t, 59, Hizb(114, 1))
}

func TestJuzData_Complete(t *testing.T) {
	assert.Len(t, JuzData, 30)
	for i, j := range JuzData {
		assert.Equal(t, i+1, j.Juz)
		assert.Equal(t, 2*j.Juz, j.Hizb[1])
	}
}
