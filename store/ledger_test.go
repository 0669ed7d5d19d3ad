package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestLedgerAddAndSubtract(t *testing.T) {
	s := newTestStore(t)

	s.AddProgress(map[string]float64{"Iron": 5, "Folate": 150})
	s.AddProgress(map[string]float64{"Iron": 2})

	p := s.Progress()
	assert.Equal(t, 7.0, p["Iron"])
	assert.Equal(t, 150.0, p["Folate"])

	s.SubtractProgress(map[string]float64{"Iron": 3})
	assert.Equal(t, 4.0, s.Progress()["Iron"])
}

func TestLedgerClampsAtZero(t *testing.T) {
	s := newTestStore(t)

	s.AddProgress(map[string]float64{"Calcium": 100})
	s.SubtractProgress(map[string]float64{"Calcium": 250})
	assert.Equal(t, 0.0, s.Progress()["Calcium"])

	t.Run("subtract on empty ledger stays zero", func(t *testing.T) {
		s.SubtractProgress(map[string]float64{"Iron": 10})
		assert.Equal(t, 0.0, s.Progress()["Iron"])
	})
}

func TestLedgerNilIsNoOp(t *testing.T) {
	s := newTestStore(t)

	notified := 0
	s.Subscribe(func(topic string) {
		if topic == TopicNutrients {
			notified++
		}
	})

	s.AddProgress(nil)
	s.SubtractProgress(nil)
	assert.Empty(t, s.Progress())
	assert.Zero(t, notified)
}

func TestLedgerReset(t *testing.T) {
	s := newTestStore(t)

	s.AddProgress(map[string]float64{"Iron": 5, "Protein": 30})
	s.ResetProgress()
	assert.Empty(t, s.Progress())
}

func TestLedgerSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, logger.Nop())
	require.NoError(t, err)
	s.AddProgress(map[string]float64{"Iron": 9})

	reopened, err := Open(dir, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 9.0, reopened.Progress()["Iron"])
}
