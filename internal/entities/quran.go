package entities

// Surah is a reference entity seeded once from the bundled dataset and never
// mutated afterwards. Exactly 114 rows exist once seeding has completed.
type Surah struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NameAr       string `gorm:"size:100" json:"name_ar"`
	NameEn       string `gorm:"size:100" json:"name_en,omitempty"`
	NameFr       string `gorm:"size:100" json:"name_fr"`
	NamePhonetic string `gorm:"size:100" json:"name_phonetic"`
	VersesCount  int    `json:"verses_count"`
}

func (Surah) TableName() string {
	return "surahs"
}

// Verse is a reference entity. (SurahID, VerseNumber) is unique across the corpus.
type Verse struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	SurahID         uint   `gorm:"index:idx_surah_verse" json:"surah_id"`
	VerseNumber     int    `gorm:"index:idx_surah_verse" json:"verse_number"`
	ArabicText      string `gorm:"type:text" json:"arabic_text"`
	PhoneticText    string `gorm:"type:text" json:"phonetic_text"`
	TranslationText string `gorm:"type:text" json:"translation_text"`
	TafsirText      string `gorm:"type:text" json:"tafsir_text"`
}

func (Verse) TableName() string {
	return "verses"
}
