package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Sword Art Online", "Sword_Art_Online"},
		{"punctuation", "K-On!", "K_On"},
		{"diacritics", "Puella Magi Madoka☆Magica", "Puella_Magi_Madoka_Magica"},
		{"idolmaster_fixup", "THE iDOLM@STER", "The_Idolmaster"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeTitle(tt.raw))
		})
	}
}

func TestHumanizeLocalized(t *testing.T) {
	assert.Equal(t, "Мастера_Меча_Онлайн", humanizeLocalized("Мастера меча онлайн"))
	assert.Equal(t, "Евангелион_96", humanizeLocalized("Евангелион: 96!"))
}

func TestHumanizeFranchise(t *testing.T) {
	assert.Equal(t, "Sword_Art_Online", humanizeFranchise("sword_art_online"))
	assert.Equal(t, "", humanizeFranchise(""))
}

func TestSameWordMultiset(t *testing.T) {
	assert.True(t, sameWordMultiset("Sword_Art_Online", "Online_Art_Sword"))
	assert.False(t, sameWordMultiset("Sword_Art_Online", "Sword_Art_Online_Ii"))
	assert.False(t, sameWordMultiset("Sword_Art_Online", "Sword_Art_Offline"))
}

func TestStripDailyCounter(t *testing.T) {
	assert.Equal(t, " Megumin ", stripDailyCounter("Daily Megumin #847"))
	// Without both markers the caption stays untouched.
	assert.Equal(t, "Daily life", stripDailyCounter("Daily life"))
	assert.Equal(t, "track #5", stripDailyCounter("track #5"))
}
