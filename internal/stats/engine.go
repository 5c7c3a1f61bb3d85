// Package stats derives the reading statistics snapshot from the event log
// and the favourites set. Nothing here is persisted; every snapshot is
// recomputed on demand.
package stats

import (
	"log"
	"math"
	"time"

	"github.com/mrlokans/quran-companion/internal/quran"
)

// maxStreakLookbackDays bounds the distinct-day scan. Streaks longer than
// this report the cap rather than the true consecutive-day count.
const maxStreakLookbackDays = 30

const dayFormat = "2006-01-02"

// Snapshot is the derived statistics bundle pushed to the sync endpoint and
// shown on the statistics screen.
type Snapshot struct {
	TotalVersesRead int `json:"total_verses_read"`
	SurahsVisited   int `json:"surahs_visited"`
	FavoritesCount  int `json:"favorites_count"`
	ReadingStreak   int `json:"reading_streak"`
	TodayVersesRead int `json:"today_verses_read"`
	WeekVersesRead  int `json:"week_verses_read"`
	ProgressPercent int `json:"progress_percent"`
}

// EventLog is the slice of reading-history persistence the engine reads.
type EventLog interface {
	DistinctDates(limit int) ([]string, error)
	DistinctVerseCount() (int64, error)
	DistinctVerseCountOn(date string) (int64, error)
	DistinctVerseCountSince(date string) (int64, error)
	SurahsVisited() (int64, error)
}

// FavoritesCounter reports the favourite set cardinality.
type FavoritesCounter interface {
	Count() (int64, error)
}

// Engine computes snapshots. The individual aggregate queries are independent
// and read-only; a failed query degrades its metric to zero instead of
// failing the whole snapshot.
type Engine struct {
	events    EventLog
	favorites FavoritesCounter

	now func() time.Time
}

// NewEngine creates a statistics engine over the given stores.
func NewEngine(events EventLog, favorites FavoritesCounter) *Engine {
	return &Engine{
		events:    events,
		favorites: favorites,
		now:       time.Now,
	}
}

// Snapshot computes the current statistics. An empty log yields the zero
// snapshot, not an error.
func (e *Engine) Snapshot() Snapshot {
	var snap Snapshot

	snap.TotalVersesRead = int(e.count("total verses", e.events.DistinctVerseCount))
	snap.SurahsVisited = int(e.count("surahs visited", e.events.SurahsVisited))
	snap.FavoritesCount = int(e.count("favorites", e.favorites.Count))

	today := e.now().Format(dayFormat)
	weekStart := e.now().AddDate(0, 0, -6).Format(dayFormat)

	snap.TodayVersesRead = int(e.count("today verses", func() (int64, error) {
		return e.events.DistinctVerseCountOn(today)
	}))
	snap.WeekVersesRead = int(e.count("week verses", func() (int64, error) {
		return e.events.DistinctVerseCountSince(weekStart)
	}))

	snap.ReadingStreak = e.streak()
	snap.ProgressPercent = progressPercent(snap.TotalVersesRead)

	return snap
}

func (e *Engine) count(metric string, query func() (int64, error)) int64 {
	n, err := query()
	if err != nil {
		log.Printf("Stats: %s query failed, defaulting to 0: %v", metric, err)
		return 0
	}
	return n
}

// streak walks the distinct-day list newest first. The streak is alive only
// if the most recent day is today or yesterday; it then extends while each
// adjacent pair of days is exactly one calendar day apart.
func (e *Engine) streak() int {
	dates, err := e.events.DistinctDates(maxStreakLookbackDays)
	if err != nil {
		log.Printf("Stats: streak query failed, defaulting to 0: %v", err)
		return 0
	}
	if len(dates) == 0 {
		return 0
	}

	today := e.now().Format(dayFormat)
	yesterday := e.now().AddDate(0, 0, -1).Format(dayFormat)
	if dates[0] != today && dates[0] != yesterday {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		prev, err1 := time.Parse(dayFormat, dates[i-1])
		curr, err2 := time.Parse(dayFormat, dates[i])
		if err1 != nil || err2 != nil {
			break
		}
		if !curr.AddDate(0, 0, 1).Equal(prev) {
			break
		}
		streak++
	}
	return streak
}

// progressPercent is round(read/6236*100), clamped defensively to [0,100].
func progressPercent(totalVersesRead int) int {
	percent := int(math.Round(float64(totalVersesRead) / float64(quran.TotalVerses) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
