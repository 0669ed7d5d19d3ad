package store

import (
	"strings"

	"github.com/SillyCatLover68/NourishNine-Web-App/data"
	"github.com/SillyCatLover68/NourishNine-Web-App/utils"
)

// HydrationGoalCups is the daily hydration target shown on the dashboard.
const HydrationGoalCups = 8

// Profile returns the current user profile.
func (s *Store) Profile() UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the profile, queues a best-effort remote upsert, and
// notifies listeners.
func (s *Store) SetProfile(p UserProfile) {
	s.mu.Lock()
	s.profile = p
	s.persist(keyUserData, s.profile)
	outbox := s.outbox
	s.mu.Unlock()

	s.notify(TopicProfile)
	if outbox != nil {
		outbox.EnqueueProfile(p)
	}
}

// UpdateProfile applies fn to the profile under the store's lock and
// persists the result.
func (s *Store) UpdateProfile(fn func(p *UserProfile)) {
	s.mu.Lock()
	fn(&s.profile)
	s.persist(keyUserData, s.profile)
	s.mu.Unlock()
	s.notify(TopicProfile)
}

// TrimesterForWeek derives the trimester from the gestational week.
func TrimesterForWeek(week int) int {
	switch {
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}

// DerivedBMI recomputes BMI from weight/height when both are present,
// preferring the recomputation over the stored field; falls back to the
// stored value otherwise. Which of the two is authoritative when they
// disagree is an open product question.
func (p UserProfile) DerivedBMI() (float64, bool) {
	if p.Weight > 0 && p.Height > 0 {
		if bmi, err := utils.CalculateBMI(p.Height, p.Weight); err == nil {
			return bmi, true
		}
	}
	if p.BMI > 0 {
		return p.BMI, true
	}
	return 0, false
}

// RecommendedCalories is the heuristic daily calorie target: base 2000,
// +340 in trimester 2, +450 in trimester 3, +200 when underweight
// (BMI < 18.5), -150 when BMI >= 25.
func (p UserProfile) RecommendedCalories() float64 {
	cal := 2000.0
	trimester := p.Trimester
	if trimester == 0 && p.PregnancyWeek > 0 {
		trimester = TrimesterForWeek(p.PregnancyWeek)
	}
	switch trimester {
	case 2:
		cal += 340
	case 3:
		cal += 450
	}
	if bmi, ok := p.DerivedBMI(); ok {
		if bmi < 18.5 {
			cal += 200
		} else if bmi >= 25 {
			cal -= 150
		}
	}
	return cal
}

// IntakeScore labels a day's entries by scanning name+notes against the
// healthy/unhealthy keyword lists. Each entry contributes +1 on a healthy
// match, -1 on an unhealthy match, 0 otherwise. A heuristic, not a
// nutrition-accurate computation.
type IntakeScore struct {
	Score int
	Label string
}

// ScoreIntake applies the keyword heuristic to the given entries.
// Thresholds: score >= 2 Good, >= 0 Medium, else Poor.
func ScoreIntake(entries []FoodLogEntry) IntakeScore {
	score := 0
	for _, e := range entries {
		text := strings.ToLower(e.Name + " " + e.Notes)
		if containsKeyword(text, data.HealthyKeywords) {
			score++
		} else if containsKeyword(text, data.UnhealthyKeywords) {
			score--
		}
	}
	out := IntakeScore{Score: score}
	switch {
	case score >= 2:
		out.Label = "Good"
	case score >= 0:
		out.Label = "Medium"
	default:
		out.Label = "Poor"
	}
	return out
}

func containsKeyword(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// AddHydrationCup adds one cup, capped at the daily goal, and returns the
// new count.
func (s *Store) AddHydrationCup() int {
	var cups int
	changed := false
	s.mu.Lock()
	cups = s.profile.HydrationCups
	if cups < HydrationGoalCups {
		cups++
		s.profile.HydrationCups = cups
		s.persist(keyUserData, s.profile)
		changed = true
	}
	s.mu.Unlock()
	if changed {
		s.notify(TopicProfile)
	}
	return cups
}

// SetMood records today's mood.
func (s *Store) SetMood(mood string) {
	s.UpdateProfile(func(p *UserProfile) { p.Mood = mood })
}

// MoodRecommendations is the guidance shown after picking a mood.
type MoodRecommendations struct {
	Nutrients []string `json:"nutrients"`
	Hydration string   `json:"hydration"`
	Exercise  string   `json:"exercise"`
	Tips      []string `json:"tips"`
}

// RecommendationsForMood returns mood-tracker guidance for the three moods
// the UI offers. Unknown moods get the neutral set.
func RecommendationsForMood(mood string) MoodRecommendations {
	switch mood {
	case "😣":
		return MoodRecommendations{
			Nutrients: []string{
				"Vitamin D foods (eggs, fortified milk)",
				"Omega-3 (salmon, walnuts)",
				"Complex carbs (oatmeal, whole grains)",
			},
			Hydration: "Aim for 8-10 cups of water today",
			Exercise:  "Light 5-10 minute walk can boost mood",
			Tips: []string{
				"Low mood can be linked to nutrient deficiencies",
				"Try getting some sunlight",
				"Small, frequent meals help stabilize energy",
			},
		}
	case "😄":
		return MoodRecommendations{
			Nutrients: []string{"Keep up the great nutrition!", "Continue balanced meals"},
			Hydration: "Maintain 8-10 cups daily",
			Exercise:  "Great time for light exercise!",
			Tips:      []string{"You're doing great!", "Keep up the healthy habits"},
		}
	default:
		return MoodRecommendations{
			Nutrients: []string{"Balanced meals with protein and carbs", "Stay hydrated"},
			Hydration: "Continue with 8-10 cups daily",
			Exercise:  "Light stretching or 10-minute walk",
			Tips:      []string{"Maintain regular meal schedule", "Get adequate sleep"},
		}
	}
}
