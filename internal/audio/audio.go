// Package audio builds recitation URLs for the everyayah.com archive.
package audio

import "fmt"

const baseURL = "https://everyayah.com/data"

// Reciter describes one recitation available on the archive.
type Reciter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Dir is the archive directory name, encoding the bitrate.
	Dir string `json:"-"`
}

// Catalog lists the supported reciters. The first entry is the default.
var Catalog = []Reciter{
	{ID: "ar.alafasy", Name: "Mishary Rashid Alafasy", Dir: "Alafasy_128kbps"},
	{ID: "ar.abdulbasitmurattal", Name: "Abdul Basit (Murattal)", Dir: "Abdul_Basit_Murattal_192kbps"},
	{ID: "ar.husary", Name: "Mahmoud Khalil Al-Husary", Dir: "Husary_128kbps"},
	{ID: "ar.minshawi", Name: "Mohamed Siddiq El-Minshawi", Dir: "Minshawy_Murattal_128kbps"},
	{ID: "ar.sudais", Name: "Abdurrahmaan As-Sudais", Dir: "Abdurrahmaan_As-Sudais_192kbps"},
}

// Lookup returns the reciter for the given ID.
func Lookup(reciterID string) (Reciter, bool) {
	for _, r := range Catalog {
		if r.ID == reciterID {
			return r, true
		}
	}
	return Reciter{}, false
}

// VerseURL returns the MP3 URL for a single verse. The archive names files
// with zero-padded surah and verse numbers, e.g. 002255.mp3.
func VerseURL(reciter Reciter, surahID uint, verseNumber int) string {
	return fmt.Sprintf("%s/%s/%03d%03d.mp3", baseURL, reciter.Dir, surahID, verseNumber)
}
