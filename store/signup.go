package store

// SignupWizard is the linear 4-step onboarding flow. Nothing is persisted
// until the final step commits; Back never loses entered data.
type SignupWizard struct {
	store *Store
	step  int

	// Draft holds the in-progress answers. Callers fill fields between
	// Next calls.
	Draft UserProfile
}

// NewSignupWizard starts the wizard at step 1.
func NewSignupWizard(s *Store) *SignupWizard {
	return &SignupWizard{store: s, step: 1}
}

// Step reports the current step, 1 through 4.
func (w *SignupWizard) Step() int { return w.step }

// Next advances the wizard, deriving the trimester after step 1 and BMI
// after step 2. On step 4 it sanitizes the draft and commits the profile to
// the store; the returned bool reports completion.
func (w *SignupWizard) Next() bool {
	switch w.step {
	case 1:
		if w.Draft.PregnancyWeek > 0 {
			w.Draft.Trimester = TrimesterForWeek(w.Draft.PregnancyWeek)
		}
	case 2:
		if bmi, ok := w.Draft.DerivedBMI(); ok {
			w.Draft.BMI = bmi
		}
	}
	if w.step < 4 {
		w.step++
		return false
	}

	// Zero out non-positive measurements rather than storing garbage.
	if w.Draft.Weight <= 0 {
		w.Draft.Weight = 0
	}
	if w.Draft.Height <= 0 {
		w.Draft.Height = 0
	}
	w.store.SetProfile(w.Draft)
	return true
}

// Back steps the wizard backwards, stopping at step 1.
func (w *SignupWizard) Back() {
	if w.step > 1 {
		w.step--
	}
}
