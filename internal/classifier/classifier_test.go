package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"money-tracker/internal/learn"
	"money-tracker/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var trainingSet = []struct {
	text  string
	label string
}{
	{"petrol 1000", "Expenses|Transport"},
	{"bus ticket 50", "Expenses|Transport"},
	{"train pass 600", "Expenses|Transport"},
	{"lunch 200", "Expenses|Food & Drinks"},
	{"coffee 20", "Expenses|Food & Drinks"},
	{"salary credited 25000", "Income|Salary"},
}

func newTestModel(t *testing.T) *Model {
	t.Helper()

	docs := make([]string, 0, len(trainingSet))
	for _, ex := range trainingSet {
		docs = append(docs, ex.text)
	}
	labels := []string{"Expenses|Transport", "Expenses|Food & Drinks", "Income|Salary"}

	vec := learn.FitVectorizer(docs)
	m, err := NewModel(vec, learn.NewSGD(vec.Size(), len(labels), learn.DefaultAlpha, learn.DefaultLearningRate), labels)
	require.NoError(t, err)

	for epoch := 0; epoch < 20; epoch++ {
		for _, ex := range trainingSet {
			_, err := m.Learn(ex.text, ex.label)
			require.NoError(t, err)
		}
	}
	return m
}

// memoryStore keeps the saved model in memory and can be told to fail.
type memoryStore struct {
	mu      sync.Mutex
	model   *Model
	saveErr error
	saves   int
}

func (s *memoryStore) Load() (*Model, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		return nil, false
	}
	return s.model.Clone(), true
}

func (s *memoryStore) Save(m *Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.model = m.Clone()
	s.saves++
	return nil
}

func TestModel_PredictsTrainedLabels(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, "Expenses|Transport", m.Predict("petrol 1000"))
	assert.Equal(t, "Expenses|Food & Drinks", m.Predict("lunch 200"))
	assert.EqualValues(t, 20*len(trainingSet), m.Revision())
}

func TestModel_LearnAddsUnknownLabel(t *testing.T) {
	m := newTestModel(t)

	added, err := m.Learn("bought btc 500", "Savings / Investments|Crypto")

	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, m.Labels, "Savings / Investments|Crypto")
	assert.Equal(t, len(m.Labels), m.Classifier.Classes())
	assert.NoError(t, m.Validate())
}

func TestModel_LearnRejectsMalformedLabel(t *testing.T) {
	m := newTestModel(t)
	before := len(m.Labels)

	_, err := m.Learn("whatever", "NoSeparatorHere")

	assert.ErrorIs(t, err, taxonomy.ErrMalformedLabel)
	assert.Len(t, m.Labels, before)
}

func TestModel_CloneIsIndependent(t *testing.T) {
	m := newTestModel(t)
	clone := m.Clone()

	_, err := clone.Learn("gym membership", "Expenses|Personal Care")
	require.NoError(t, err)

	assert.NotContains(t, m.Labels, "Expenses|Personal Care")
	assert.NotEqual(t, m.Revision(), clone.Revision())
}

func TestNewModel_RejectsInconsistentParts(t *testing.T) {
	vec := learn.FitVectorizer([]string{"tea 15"})

	_, err := NewModel(vec, learn.NewSGD(vec.Size(), 2, 0, 0.5), []string{"a|b"})
	assert.ErrorIs(t, err, ErrLabelMismatch)

	_, err = NewModel(vec, learn.NewSGD(vec.Size(), 2, 0, 0.5), []string{"a|b", "a|b"})
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	_, err = NewModel(nil, learn.NewSGD(vec.Size(), 1, 0, 0.5), []string{"a|b"})
	assert.ErrorIs(t, err, ErrIncompleteModel)
}

type FileStoreTestSuite struct {
	suite.Suite
	dir   string
	store *FileStore
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = NewFileStore(filepath.Join(s.dir, "model.json"))
}

func (s *FileStoreTestSuite) TestLoad_MissingFile() {
	m, ok := s.store.Load()

	s.False(ok)
	s.Nil(m)
}

func (s *FileStoreTestSuite) TestLoad_CorruptFile() {
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte(`{"transform":`), 0o644))

	_, ok := s.store.Load()

	s.False(ok)
}

func (s *FileStoreTestSuite) TestLoad_InconsistentModel() {
	s.Require().NoError(os.WriteFile(s.store.Path(),
		[]byte(`{"transform":{"vocabulary":{},"idf":[]},"classifier":{"weights":[[]],"bias":[0]},"labels":[]}`), 0o644))

	_, ok := s.store.Load()

	s.False(ok)
}

func (s *FileStoreTestSuite) TestSaveThenLoad_RoundTrips() {
	m := newTestModel(s.T())

	s.Require().NoError(s.store.Save(m))
	loaded, ok := s.store.Load()

	s.Require().True(ok)
	s.Equal(m.Labels, loaded.Labels)
	s.Equal(m.Revision(), loaded.Revision())
	s.Equal(m.Predict("petrol 1000"), loaded.Predict("petrol 1000"))
}

func (s *FileStoreTestSuite) TestSave_WritesExactlyThreeFields() {
	s.Require().NoError(s.store.Save(newTestModel(s.T())))

	data, err := os.ReadFile(s.store.Path())
	s.Require().NoError(err)

	var fields map[string]any
	s.Require().NoError(json.Unmarshal(data, &fields))
	s.Len(fields, 3)
	s.Contains(fields, "transform")
	s.Contains(fields, "classifier")
	s.Contains(fields, "labels")
}

func (s *FileStoreTestSuite) TestSave_LeavesNoTempFiles() {
	s.Require().NoError(s.store.Save(newTestModel(s.T())))
	s.Require().NoError(s.store.Save(newTestModel(s.T())))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.Equal("model.json", entries[0].Name())
}

func (s *FileStoreTestSuite) TestSave_InvalidModelKeepsPreviousArtifact() {
	good := newTestModel(s.T())
	s.Require().NoError(s.store.Save(good))

	bad := good.Clone()
	bad.Labels = bad.Labels[:1]

	s.Error(s.store.Save(bad))

	loaded, ok := s.store.Load()
	s.Require().True(ok)
	s.Equal(good.Labels, loaded.Labels)
}

func (s *FileStoreTestSuite) TestSave_UnwritableDirectory() {
	if os.Geteuid() == 0 {
		s.T().Skip("permissions are not enforced for root")
	}
	readOnly := filepath.Join(s.dir, "ro")
	s.Require().NoError(os.Mkdir(readOnly, 0o555))
	store := NewFileStore(filepath.Join(readOnly, "model.json"))

	s.Error(store.Save(newTestModel(s.T())))

	entries, err := os.ReadDir(readOnly)
	s.Require().NoError(err)
	s.Empty(entries)
}

type LabelClassifierTestSuite struct {
	suite.Suite
	ctx      context.Context
	registry *taxonomy.Registry
	store    *memoryStore
	lc       *LabelClassifier
}

func TestLabelClassifierTestSuite(t *testing.T) {
	suite.Run(t, new(LabelClassifierTestSuite))
}

func (s *LabelClassifierTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = taxonomy.Default()
	s.store = &memoryStore{model: newTestModel(s.T())}
	s.lc = NewLabelClassifier(s.registry, s.store)
}

func (s *LabelClassifierTestSuite) TestDegradedMode() {
	lc := NewLabelClassifier(s.registry, &memoryStore{})

	s.False(lc.Available())
	s.Equal("Expenses|Others", lc.Predict("petrol 1000"))
	s.Empty(lc.KnownLabels())
	s.ErrorIs(lc.PartialFit(s.ctx, "petrol 1000", "Expenses|Transport"), ErrModelUnavailable)
}

func (s *LabelClassifierTestSuite) TestPredict() {
	s.True(s.lc.Available())
	s.Equal("Expenses|Transport", s.lc.Predict("petrol 1000"))
}

func (s *LabelClassifierTestSuite) TestPartialFit_MalformedLabelWritesNothing() {
	err := s.lc.PartialFit(s.ctx, "whatever", "NoSeparatorHere")

	var malformed *taxonomy.MalformedLabelError
	s.True(errors.As(err, &malformed))
	s.Zero(s.store.saves)
}

func (s *LabelClassifierTestSuite) TestPartialFit_NewLabelIsKnownAndPersisted() {
	label := "Savings / Investments|Crypto"
	s.NotContains(s.lc.KnownLabels(), label)

	s.Require().NoError(s.lc.PartialFit(s.ctx, "bought btc 500", label))

	s.Contains(s.lc.KnownLabels(), label)
	s.Equal(1, s.store.saves)
	persisted, ok := s.store.Load()
	s.Require().True(ok)
	s.Contains(persisted.Labels, label)
}

func (s *LabelClassifierTestSuite) TestPartialFit_LabelsNeverShrink() {
	s.Require().NoError(s.lc.PartialFit(s.ctx, "bought btc 500", "Savings / Investments|Crypto"))
	first := s.lc.KnownLabels()

	s.Require().NoError(s.lc.PartialFit(s.ctx, "netflix 500", "Expenses|Entertainment"))
	s.Require().NoError(s.lc.PartialFit(s.ctx, "petrol 900", "Expenses|Transport"))

	second := s.lc.KnownLabels()
	for _, label := range first {
		s.Contains(second, label)
	}
	s.Len(second, len(first)+1)
}

func (s *LabelClassifierTestSuite) TestPartialFit_SerialCorrectionsFollowLatestLabel() {
	text := "gift for mom 700"
	first := "Expenses|Gifts"
	second := "Usne-Pasne|Money Sent"

	s.Require().NoError(s.lc.PartialFit(s.ctx, text, first))
	afterFirst := s.lc.Snapshot().Scores(text)

	s.Require().NoError(s.lc.PartialFit(s.ctx, text, second))
	afterSecond := s.lc.Snapshot().Scores(text)

	s.Greater(afterSecond[second], afterFirst[second])
	s.Less(afterSecond[first], afterFirst[first])
	s.Contains(s.lc.KnownLabels(), first)
	s.Contains(s.lc.KnownLabels(), second)
}

func (s *LabelClassifierTestSuite) TestPartialFit_FailedSaveKeepsSnapshot() {
	before := s.lc.Snapshot()
	s.store.saveErr = errors.New("disk full")

	err := s.lc.PartialFit(s.ctx, "bought btc 500", "Savings / Investments|Crypto")

	s.Error(err)
	s.Same(before, s.lc.Snapshot())
	s.NotContains(s.lc.KnownLabels(), "Savings / Investments|Crypto")
}

func (s *LabelClassifierTestSuite) TestPartialFit_DoesNotMutatePublishedSnapshot() {
	before := s.lc.Snapshot()
	revision := before.Revision()
	labels := len(before.Labels)

	s.Require().NoError(s.lc.PartialFit(s.ctx, "bought btc 500", "Savings / Investments|Crypto"))

	s.Equal(revision, before.Revision())
	s.Len(before.Labels, labels)
	s.NotSame(before, s.lc.Snapshot())
}

func (s *LabelClassifierTestSuite) TestPartialFit_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.ErrorIs(s.lc.PartialFit(ctx, "petrol 1000", "Expenses|Transport"), context.Canceled)
	s.Zero(s.store.saves)
}

func (s *LabelClassifierTestSuite) TestPartialFit_ConcurrentUpdatesLoseNothing() {
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label := fmt.Sprintf("Custom|Bucket %d", i)
			s.NoError(s.lc.PartialFit(s.ctx, fmt.Sprintf("custom spend %d", i), label))
			_ = s.lc.Predict("petrol 1000")
		}(i)
	}
	wg.Wait()

	known := s.lc.KnownLabels()
	for i := 0; i < workers; i++ {
		s.Contains(known, fmt.Sprintf("Custom|Bucket %d", i))
	}
	s.Equal(workers, s.store.saves)

	persisted, ok := s.store.Load()
	s.Require().True(ok)
	s.Equal(known, persisted.Labels)
	s.Equal(s.lc.Snapshot().Revision(), persisted.Revision())
}

func (s *LabelClassifierTestSuite) TestReload_PicksUpStoreChanges() {
	replacement := newTestModel(s.T())
	_, err := replacement.Learn("bought btc 500", "Savings / Investments|Crypto")
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(replacement))

	s.True(s.lc.Reload())
	s.Contains(s.lc.KnownLabels(), "Savings / Investments|Crypto")
}

func (s *LabelClassifierTestSuite) TestReload_KeepsSnapshotWhenStoreEmpty() {
	before := s.lc.Snapshot()
	s.store.model = nil

	s.False(s.lc.Reload())
	s.Same(before, s.lc.Snapshot())
}

func (s *LabelClassifierTestSuite) TestWatch_RequiresFileStore() {
	s.ErrorIs(s.lc.Watch(s.ctx), ErrWatchUnsupported)
}

func TestWatch_ReloadsReplacedModelFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "model.json"))
	require.NoError(t, store.Save(newTestModel(t)))

	lc := NewLabelClassifier(taxonomy.Default(), store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- lc.Watch(ctx) }()

	// Another writer replaces the artifact while the watcher is running.
	retrained := newTestModel(t)
	_, err := retrained.Learn("bought btc 500", "Savings / Investments|Crypto")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_ = NewFileStore(store.Path()).Save(retrained)
		for _, label := range lc.KnownLabels() {
			if label == "Savings / Investments|Crypto" {
				return true
			}
		}
		return false
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
