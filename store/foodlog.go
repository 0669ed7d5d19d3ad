package store

import (
	"strings"
	"time"

	"github.com/SillyCatLover68/NourishNine-Web-App/data"
)

// localDateKey is the calendar-day key entries are grouped and archived
// under. Local date, not a timezone-robust interval, matching the product's
// day semantics.
func localDateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// AddEntry validates, stamps, and prepends a new entry, accumulates its
// nutrient amounts into the ledger, and queues a best-effort remote mirror
// write. Returns the stored entry and false when the name is empty (silent
// no-op).
func (s *Store) AddEntry(e FoodLogEntry) (FoodLogEntry, bool) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return FoodLogEntry{}, false
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	s.mu.Lock()
	e.ID = time.Now().UnixMilli()
	// Creation-timestamp ids can collide when entries land in the same
	// millisecond; bump past the newest existing id.
	if len(s.entries) > 0 && e.ID <= s.entries[0].ID {
		e.ID = s.entries[0].ID + 1
	}
	s.entries = append([]FoodLogEntry{e}, s.entries...)
	s.persist(keyFoodLog, s.entries)
	added := len(e.NutrientAmounts) > 0
	if added {
		for k, v := range e.NutrientAmounts {
			s.progress[k] += v
		}
		s.persist(keyProgress, s.progress)
	}
	outbox := s.outbox
	s.mu.Unlock()

	if added {
		s.notify(TopicFoodLog, TopicNutrients)
	} else {
		s.notify(TopicFoodLog)
	}
	if outbox != nil {
		outbox.EnqueueEntry(e)
	}
	return e, true
}

// EntryPatch replaces an entry's mutable fields. All three fields are
// replaced wholesale; a nil NutrientAmounts leaves the entry without
// amounts.
type EntryPatch struct {
	Notes           string
	Calories        float64
	NutrientAmounts map[string]float64
}

// EditEntry reconciles the ledger by subtracting the entry's old amounts
// before adding the new ones, then applies the patch. Returns false when no
// entry has the given id.
func (s *Store) EditEntry(id int64, patch EntryPatch) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	e := &s.entries[idx]
	for k, v := range e.NutrientAmounts {
		next := s.progress[k] - v
		if next < 0 {
			next = 0
		}
		s.progress[k] = next
	}
	e.Notes = patch.Notes
	e.Calories = patch.Calories
	e.NutrientAmounts = patch.NutrientAmounts
	for k, v := range patch.NutrientAmounts {
		s.progress[k] += v
	}
	s.persist(keyFoodLog, s.entries)
	s.persist(keyProgress, s.progress)
	s.mu.Unlock()

	s.notify(TopicFoodLog, TopicNutrients)
	return true
}

// RemoveEntry deletes an entry and returns its nutrient amounts to the
// ledger. Returns false when no entry has the given id.
func (s *Store) RemoveEntry(id int64) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	for k, v := range s.entries[idx].NutrientAmounts {
		next := s.progress[k] - v
		if next < 0 {
			next = 0
		}
		s.progress[k] = next
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.persist(keyFoodLog, s.entries)
	s.persist(keyProgress, s.progress)
	s.mu.Unlock()

	s.notify(TopicFoodLog, TopicNutrients)
	return true
}

// ClearLog drops every active entry. The ledger is left untouched, matching
// the Food Log page's "Clear Entire Log" action.
func (s *Store) ClearLog() {
	s.mu.Lock()
	s.entries = nil
	s.persist(keyFoodLog, s.entries)
	s.mu.Unlock()
	s.notify(TopicFoodLog)
}

// ArchiveToday moves today's entries (by local date) into the history list
// under today's date key and clears them from the active log. As a side
// effect it also resets the nutrient ledger and the hydration counter and
// advances the profile's week day.
//
// The ledger/hydration coupling is inherited product behavior awaiting
// confirmation; do not untangle it here without sign-off.
func (s *Store) ArchiveToday() {
	today := localDateKey(time.Now())

	s.mu.Lock()
	var todays, rest []FoodLogEntry
	for _, e := range s.entries {
		if localDateKey(e.Time) == today {
			todays = append(todays, e)
		} else {
			rest = append(rest, e)
		}
	}
	if len(todays) > 0 {
		s.history = append(s.history, DayArchive{Date: today, Entries: todays})
		s.persist(keyFoodHistory, s.history)
	}
	s.entries = rest
	s.progress = map[string]float64{}
	s.profile.HydrationCups = 0
	s.profile.WeekDay++
	s.persist(keyFoodLog, s.entries)
	s.persist(keyProgress, s.progress)
	s.persist(keyUserData, s.profile)
	s.mu.Unlock()

	s.notify(TopicFoodLog, TopicNutrients, TopicProfile)
}

// Entries returns the active log, most recent first.
func (s *Store) Entries() []FoodLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FoodLogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// History returns the archived days.
func (s *Store) History() []DayArchive {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DayArchive, len(s.history))
	copy(out, s.history)
	return out
}

// TodayEntries returns the active entries logged on the current local date.
func (s *Store) TodayEntries() []FoodLogEntry {
	today := localDateKey(time.Now())
	var out []FoodLogEntry
	for _, e := range s.Entries() {
		if localDateKey(e.Time) == today {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDate buckets entries by their local date key.
func GroupByDate(entries []FoodLogEntry) map[string][]FoodLogEntry {
	out := map[string][]FoodLogEntry{}
	for _, e := range entries {
		key := localDateKey(e.Time)
		out[key] = append(out[key], e)
	}
	return out
}

// TodayTotals sums nutrient amounts across today's entries.
func (s *Store) TodayTotals() map[string]float64 {
	totals := map[string]float64{}
	for _, e := range s.TodayEntries() {
		for k, v := range e.NutrientAmounts {
			totals[k] += v
		}
	}
	return totals
}

// IntakeSummary is the dashboard's at-a-glance view of today's intake.
type IntakeSummary struct {
	Label       string
	AvgPercent  float64
	MealsCount  int
	SnacksCount int
}

// TodayIntakeSummary computes the average clamped percent-of-target across
// catalog nutrients and labels it Good (>=0.75), Medium (>=0.4), or Poor.
func (s *Store) TodayIntakeSummary() IntakeSummary {
	todays := s.TodayEntries()
	totals := map[string]float64{}
	sum := IntakeSummary{}
	for _, e := range todays {
		if e.MealType == MealSnack {
			sum.SnacksCount++
		} else {
			sum.MealsCount++
		}
		for k, v := range e.NutrientAmounts {
			totals[k] += v
		}
	}

	var acc float64
	var count int
	for _, n := range data.Nutrients {
		if n.Target <= 0 {
			continue
		}
		p := totals[n.Name] / n.Target
		if p > 1 {
			p = 1
		}
		acc += p
		count++
	}
	if count > 0 {
		sum.AvgPercent = acc / float64(count)
	}
	switch {
	case sum.AvgPercent >= 0.75:
		sum.Label = "Good"
	case sum.AvgPercent >= 0.4:
		sum.Label = "Medium"
	default:
		sum.Label = "Poor"
	}
	return sum
}
