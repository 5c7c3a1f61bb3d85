package dataset

// Demo returns the bundled demo subset: Al-Fatiha with full text plus the
// short final surahs' metadata. Used for development and tests when the full
// dataset file is not present; the startup upgrade check replaces it with the
// full corpus as soon as one is available.
func Demo() *Dataset {
	return &Dataset{
		Name:   "demo-v1",
		Surahs: demoSurahs,
		Verses: demoVerses,
	}
}

var demoSurahs = []SurahSeed{
	{ID: 1, NameAr: "الفاتحة", NameEn: "The Opening", NameFr: "L'ouverture", NamePhonetic: "Al-Fatiha", VersesCount: 7},
	{ID: 112, NameAr: "الإخلاص", NameEn: "Sincerity", NameFr: "Le monothéisme pur", NamePhonetic: "Al-Ikhlas", VersesCount: 4},
	{ID: 113, NameAr: "الفلق", NameEn: "The Daybreak", NameFr: "L'aube naissante", NamePhonetic: "Al-Falaq", VersesCount: 5},
	{ID: 114, NameAr: "الناس", NameEn: "Mankind", NameFr: "Les hommes", NamePhonetic: "An-Nas", VersesCount: 6},
}

var demoVerses = []VerseSeed{
	{
		SurahID:         1,
		VerseNumber:     1,
		ArabicText:      "بِسْمِ ٱللَّهِ ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ",
		PhoneticText:    "Bismi Allahi alrrahmani alrraheemi",
		TranslationText: "Au nom d'Allah, le Tout Miséricordieux, le Très Miséricordieux.",
		TafsirText:      "Ceci est la Basmala. Elle commence chaque sourate sauf la sourate 9.",
	},
	{
		SurahID:         1,
		VerseNumber:     2,
		ArabicText:      "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَـٰلَمِينَ",
		PhoneticText:    "Alhamdu lillahi rabbi alAAalameena",
		TranslationText: "Louange à Allah, Seigneur de l'univers.",
		TafsirText:      "La louange est due à Allah seul, créateur et maître de tout ce qui existe.",
	},
	{
		SurahID:         1,
		VerseNumber:     3,
		ArabicText:      "ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ",
		PhoneticText:    "Alrrahmani alrraheemi",
		TranslationText: "Le Tout Miséricordieux, le Très Miséricordieux,",
		TafsirText:      "Répétition des attributs de miséricorde pour souligner leur importance.",
	},
	{
		SurahID:         1,
		VerseNumber:     4,
		ArabicText:      "مَـٰلِكِ يَوْمِ ٱلدِّينِ",
		PhoneticText:    "Maliki yawmi alddeeni",
		TranslationText: "Maître du Jour de la rétribution.",
		TafsirText:      "Allah est le seul juge et maître lors du Jour du Jugement dernier.",
	},
	{
		SurahID:         1,
		VerseNumber:     5,
		ArabicText:      "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ",
		PhoneticText:    "Iyyaka naAAbudu waiyyaka nastaAeenu",
		TranslationText: "C'est Toi [Seul] que nous adorons, et c'est Toi [Seul] dont nous implorons secours.",
		TafsirText:      "L'affirmation du monothéisme pur (Tawhid).",
	},
	{
		SurahID:         1,
		VerseNumber:     6,
		ArabicText:      "ٱهْدِنَا ٱلصِّرَٰطَ ٱلْمُسْتَقِيمَ",
		PhoneticText:    "Ihdina alssirata almustaqeema",
		TranslationText: "Guide-nous dans le droit chemin,",
		TafsirText:      "Demande de guidée vers la voie droite.",
	},
	{
		SurahID:         1,
		VerseNumber:     7,
		ArabicText:      "صِرَٰطَ ٱلَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ ٱلْمَغْضُوبِ عَلَيْهِمْ وَلَا ٱلضَّآلِّينَ",
		PhoneticText:    "Sirata allatheena anAAamta AAalayhim ghayri almaghdoobi AAalayhim wala alddalleena",
		TranslationText: "le chemin de ceux que Tu as comblés de faveurs, non pas de ceux qui ont encouru Ta colère, ni des égarés.",
		TafsirText:      "Le chemin des prophètes et des véridiques.",
	},
}
