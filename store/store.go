// Package store holds the locally authoritative app state: the nutrient
// progress ledger, the food log, and the user profile. State is persisted
// write-through to a per-key JSON namespace on disk and mirrored to the
// remote gateway best-effort through an outbox. The store is the single
// source of truth; the remote mirror is never read back.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
)

// Persisted key names. One JSON file per key under the data directory.
const (
	keyUserData    = "userData"
	keyFoodLog     = "foodLog"
	keyFoodHistory = "foodLogHistory"
	keyProgress    = "nutrientProgress"
)

// Change notification topics.
const (
	TopicNutrients = "nutrientsUpdated"
	TopicFoodLog   = "foodLogUpdated"
	TopicProfile   = "profileUpdated"
)

// FoodLogEntry is one logged food or meal.
type FoodLogEntry struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	MealType        string             `json:"mealType"`
	Notes           string             `json:"notes,omitempty"`
	Time            time.Time          `json:"time"`
	Calories        float64            `json:"calories,omitempty"`
	NutrientAmounts map[string]float64 `json:"nutrientAmounts,omitempty"`
}

// Known meal types. The field is an open enum: anything non-empty is
// accepted, these are just the values the UI offers.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
	MealGeneric   = "Meal"
	MealCraving   = "Craving"
)

// DayArchive is one archived day of food log entries.
type DayArchive struct {
	Date    string         `json:"date"`
	Entries []FoodLogEntry `json:"entries"`
}

// UserProfile is the single per-device user record.
type UserProfile struct {
	Age                 int      `json:"age,omitempty"`
	ZipCode             string   `json:"zipCode,omitempty"`
	PregnancyWeek       int      `json:"pregnancyWeek,omitempty"`
	Trimester           int      `json:"trimester,omitempty"`
	Weight              float64  `json:"weight,omitempty"` // kg
	Height              float64  `json:"height,omitempty"` // cm
	BMI                 float64  `json:"bmi,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Cravings            []string `json:"cravings,omitempty"`
	CookingAccess       string   `json:"cookingAccess,omitempty"`
	BudgetPerWeek       string   `json:"budgetPerWeek,omitempty"`
	HydrationCups       int      `json:"hydrationCups,omitempty"`
	Mood                string   `json:"mood,omitempty"`
	WeekDay             int      `json:"weekDay,omitempty"`
}

// Store owns all mutable client state. Mutations are synchronous
// read-modify-write; the mutex only guards against the app's own goroutines,
// there is no cross-process coordination because the data directory has a
// single owner.
type Store struct {
	mu       sync.Mutex
	dir      string
	log      *logger.Logger
	outbox   *Outbox
	subs     []func(topic string)
	profile  UserProfile
	entries  []FoodLogEntry
	history  []DayArchive
	progress map[string]float64
}

// Open loads the persisted state from dir, creating it if needed. Missing or
// malformed files degrade to empty state rather than erroring.
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		dir:      dir,
		log:      log,
		progress: map[string]float64{},
	}
	s.load(keyUserData, &s.profile)
	s.load(keyFoodLog, &s.entries)
	s.load(keyFoodHistory, &s.history)
	s.load(keyProgress, &s.progress)
	if s.progress == nil {
		s.progress = map[string]float64{}
	}
	return s, nil
}

// SetOutbox attaches the remote mirror outbox. Without one, mirroring is
// simply skipped.
func (s *Store) SetOutbox(o *Outbox) {
	s.mu.Lock()
	s.outbox = o
	s.mu.Unlock()
}

// Subscribe registers a change listener. Listeners are invoked synchronously
// after a mutation commits, with the topic that changed.
func (s *Store) Subscribe(fn func(topic string)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify(topics ...string) {
	s.mu.Lock()
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, topic := range topics {
		for _, fn := range subs {
			fn(topic)
		}
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) load(key string, out interface{}) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("discarding malformed state file", "key", key, "err", err)
	}
}

// persist writes one key through to disk. Write failures are logged and
// swallowed: persistence is best-effort and never blocks the user flow.
func (s *Store) persist(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("marshal state", "key", key, "err", err)
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		s.log.Error("write state", "key", key, "err", err)
	}
}
