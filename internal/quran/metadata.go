// Package quran holds canonical corpus constants and the juz/hizb boundary
// table used for reading-position lookups.
package quran

// Canonical corpus totals. A seeded corpus below these counts is treated as a
// partial (demo) dataset and upgraded on startup.
const (
	// TotalSurahs is the number of surahs in the Quran.
	TotalSurahs = 114

	// TotalVerses is the canonical total verse count, used as the
	// denominator for overall completion percent.
	TotalVerses = 6236

	// FullCorpusThreshold distinguishes a demo subset from the complete
	// corpus when only row counts are available.
	FullCorpusThreshold = 6000
)

// VerseRef identifies a verse by surah and verse number.
type VerseRef struct {
	Surah uint
	Verse int
}

// JuzRange describes one juz: its two hizbs and its verse boundaries.
type JuzRange struct {
	Juz        int
	Hizb       [2]int
	StartVerse VerseRef
	EndVerse   VerseRef
}

// JuzData lists the 30 juz boundaries (derived from api.quran.com/api/v4/juzs).
var JuzData = []JuzRange{
	{Juz: 1, Hizb: [2]int{1, 2}, StartVerse: VerseRef{1, 1}, EndVerse: VerseRef{2, 141}},
	{Juz: 2, Hizb: [2]int{3, 4}, StartVerse: VerseRef{2, 142}, EndVerse: VerseRef{2, 252}},
	{Juz: 3, Hizb: [2]int{5, 6}, StartVerse: VerseRef{2, 253}, EndVerse: VerseRef{3, 92}},
	{Juz: 4, Hizb: [2]int{7, 8}, StartVerse: VerseRef{3, 93}, EndVerse: VerseRef{4, 23}},
	{Juz: 5, Hizb: [2]int{9, 10}, StartVerse: VerseRef{4, 24}, EndVerse: VerseRef{4, 147}},
	{Juz: 6, Hizb: [2]int{11, 12}, StartVerse: VerseRef{4, 148}, EndVerse: VerseRef{5, 81}},
	{Juz: 7, Hizb: [2]int{13, 14}, StartVerse: VerseRef{5, 82}, EndVerse: VerseRef{6, 110}},
	{Juz: 8, Hizb: [2]int{15, 16}, StartVerse: VerseRef{6, 111}, EndVerse: VerseRef{7, 87}},
	{Juz: 9, Hizb: [2]int{17, 18}, StartVerse: VerseRef{7, 88}, EndVerse: VerseRef{8, 40}},
	{Juz: 10, Hizb: [2]int{19, 20}, StartVerse: VerseRef{8, 41}, EndVerse: VerseRef{9, 92}},
	{Juz: 11, Hizb: [2]int{21, 22}, StartVerse: VerseRef{9, 93}, EndVerse: VerseRef{11, 5}},
	{Juz: 12, Hizb: [2]int{23, 24}, StartVerse: VerseRef{11, 6}, EndVerse: VerseRef{12, 52}},
	{Juz: 13, Hizb: [2]int{25, 26}, StartVerse: VerseRef{12, 53}, EndVerse: VerseRef{14, 52}},
	{Juz: 14, Hizb: [2]int{27, 28}, StartVerse: VerseRef{15, 1}, EndVerse: VerseRef{16, 128}},
	{Juz: 15, Hizb: [2]int{29, 30}, StartVerse: VerseRef{17, 1}, EndVerse: VerseRef{18, 74}},
	{Juz: 16, Hizb: [2]int{31, 32}, StartVerse: VerseRef{18, 75}, EndVerse: VerseRef{20, 135}},
	{Juz: 17, Hizb: [2]int{33, 34}, StartVerse: VerseRef{21, 1}, EndVerse: VerseRef{22, 78}},
	{Juz: 18, Hizb: [2]int{35, 36}, StartVerse: VerseRef{23, 1}, EndVerse: VerseRef{25, 20}},
	{Juz: 19, Hizb: [2]int{37, 38}, StartVerse: VerseRef{25, 21}, EndVerse: VerseRef{27, 55}},
	{Juz: 20, Hizb: [2]int{39, 40}, StartVerse: VerseRef{27, 56}, EndVerse: VerseRef{29, 45}},
	{Juz: 21, Hizb: [2]int{41, 42}, StartVerse: VerseRef{29, 46}, EndVerse: VerseRef{33, 30}},
	{Juz: 22, Hizb: [2]int{43, 44}, StartVerse: VerseRef{33, 31}, EndVerse: VerseRef{36, 27}},
	{Juz: 23, Hizb: [2]int{45, 46}, StartVerse: VerseRef{36, 28}, EndVerse: VerseRef{39, 31}},
	{Juz: 24, Hizb: [2]int{47, 48}, StartVerse: VerseRef{39, 32}, EndVerse: VerseRef{41, 46}},
	{Juz: 25, Hizb: [2]int{49, 50}, StartVerse: VerseRef{41, 47}, EndVerse: VerseRef{45, 37}},
	{Juz: 26, Hizb: [2]int{51, 52}, StartVerse: VerseRef{46, 1}, EndVerse: VerseRef{51, 30}},
	{Juz: 27, Hizb: [2]int{53, 54}, StartVerse: VerseRef{51, 31}, EndVerse: VerseRef{57, 29}},
	{Juz: 28, Hizb: [2]int{55, 56}, StartVerse: VerseRef{58, 1}, EndVerse: VerseRef{66, 12}},
	{Juz: 29, Hizb: [2]int{57, 58}, StartVerse: VerseRef{67, 1}, EndVerse: VerseRef{77, 50}},
	{Juz: 30, Hizb: [2]int{59, 60}, StartVerse: VerseRef{78, 1}, EndVerse: VerseRef{114, 6}},
}

// Juz returns the juz number containing the given verse.
func Juz(surahID uint, verseNumber int) int {
	for _, j := range JuzData {
		afterStart := surahID > j.StartVerse.Surah ||
			(surahID == j.StartVerse.Surah && verseNumber >= j.StartVerse.Verse)
		beforeEnd := surahID < j.EndVerse.Surah ||
			(surahID == j.EndVerse.Surah && verseNumber <= j.EndVerse.Verse)
		if afterStart && beforeEnd {
			return j.Juz
		}
	}
	return 1
}

// Hizb returns the hizb number for the given verse. The first hizb of the
// containing juz is returned; exact hizb boundaries are not tracked.
func Hizb(surahID uint, verseNumber int) int {
	juz := Juz(surahID, verseNumber)
	for _, j := range JuzData {
		if j.Juz == juz {
			return j.Hizb[0]
		}
	}
	return 1
}
