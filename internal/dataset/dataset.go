// Package dataset loads the corpus seed data: the full Quran dataset from a
// JSON file generated by the download scripts, or a small bundled demo subset
// when no dataset file is available.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mrlokans/quran-companion/internal/quran"
)

// SurahSeed is one surah row of the seed dataset.
type SurahSeed struct {
	ID           uint   `json:"id"`
	NameAr       string `json:"name_ar"`
	NameEn       string `json:"name_en"`
	NameFr       string `json:"name_fr"`
	NamePhonetic string `json:"name_phonetic"`
	VersesCount  int    `json:"verses_count"`
}

// VerseSeed is one verse row of the seed dataset.
type VerseSeed struct {
	SurahID         uint   `json:"surah_id"`
	VerseNumber     int    `json:"verse_number"`
	ArabicText      string `json:"arabic_text"`
	PhoneticText    string `json:"phonetic_text"`
	TranslationText string `json:"translation_text"`
	TafsirText      string `json:"tafsir_text"`
}

// Dataset is the corpus seed bundle.
type Dataset struct {
	Name   string      `json:"version"`
	Surahs []SurahSeed `json:"surahs"`
	Verses []VerseSeed `json:"verses"`
}

// Version returns the marker string persisted after a successful seed. It
// incorporates the row counts so a differently sized dataset always produces
// a different marker.
func (d *Dataset) Version() string {
	name := d.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("%s/%d/%d", name, len(d.Surahs), len(d.Verses))
}

// IsComplete reports whether the dataset holds the full corpus rather than a
// demo subset.
func (d *Dataset) IsComplete() bool {
	return len(d.Surahs) == quran.TotalSurahs && len(d.Verses) >= quran.FullCorpusThreshold
}

// Load reads a dataset JSON file from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	if len(ds.Surahs) == 0 || len(ds.Verses) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	return &ds, nil
}

// LoadOrDemo loads the dataset at path, falling back to the bundled demo
// subset when the file is missing.
func LoadOrDemo(path string) (*Dataset, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Demo(), nil
}
