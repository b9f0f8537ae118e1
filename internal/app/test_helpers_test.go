package app

import (
	"context"
	"fmt"

	coremission "github.com/example/bosun/internal/core/mission"
	"github.com/example/bosun/internal/ports/secondary"
)

// Ensure mockMissionRepository implements the interface
var _ secondary.MissionRepository = (*mockMissionRepository)(nil)

// mockMissionRepository implements secondary.MissionRepository for testing.
// It reproduces the adapter's contract in memory: insertion order drives
// List and tie-breaking, and Transition fails unless the current status
// is one of FromStatuses.
type mockMissionRepository struct {
	missions      map[string]*secondary.MissionRecord
	order         []string
	transitions   []*secondary.MissionEventRecord
	eventSeq      int
	createErr     error
	getErr        error
	listErr       error
	nextErr       error
	nextIDErr     error
	countErr      error
	transitionErr error
}

func newMockMissionRepository() *mockMissionRepository {
	return &mockMissionRepository{
		missions: make(map[string]*secondary.MissionRecord),
	}
}

// seed inserts a mission directly, bypassing Create's error injection.
func (m *mockMissionRepository) seed(record *secondary.MissionRecord) {
	stored := *record
	if stored.CreatedAt == "" {
		stored.CreatedAt = "2026-01-20T10:00:00Z"
	}
	m.missions[stored.ID] = &stored
	m.order = append(m.order, stored.ID)
}

func (m *mockMissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.missions[mission.ID]; exists {
		return &coremission.QueryFailureError{
			Op:  "create mission",
			Err: fmt.Errorf("mission %s already exists", mission.ID),
		}
	}
	m.seed(mission)
	return nil
}

func (m *mockMissionRepository) GetByID(ctx context.Context, id string) (*secondary.MissionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	record, ok := m.missions[id]
	if !ok {
		return nil, &coremission.NotFoundError{MissionID: id}
	}
	return record, nil
}

func (m *mockMissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var records []*secondary.MissionRecord
	for _, id := range m.order {
		record := m.missions[id]
		if filters.Status != "" && record.Status != filters.Status {
			continue
		}
		if filters.Kind != "" && record.Kind != filters.Kind {
			continue
		}
		records = append(records, record)
		if filters.Limit > 0 && len(records) == filters.Limit {
			break
		}
	}
	return records, nil
}

func (m *mockMissionRepository) NextCandidate(ctx context.Context) (*secondary.MissionRecord, error) {
	if m.nextErr != nil {
		return nil, m.nextErr
	}
	for _, tier := range [][]coremission.Status{coremission.NewWorkTier, coremission.ActiveTier} {
		for _, status := range tier {
			for _, id := range m.order {
				if m.missions[id].Status == string(status) {
					return m.missions[id], nil
				}
			}
		}
	}
	return nil, nil
}

func (m *mockMissionRepository) GetNextID(ctx context.Context) (string, error) {
	if m.nextIDErr != nil {
		return "", m.nextIDErr
	}
	maxID := 0
	for id := range m.missions {
		if num := coremission.ParseMissionNumber(id); num > maxID {
			maxID = num
		}
	}
	return coremission.GenerateMissionID(maxID), nil
}

func (m *mockMissionRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	counts := make(map[string]int)
	for _, record := range m.missions {
		counts[record.Status]++
	}
	return counts, nil
}

func (m *mockMissionRepository) Transition(ctx context.Context, transition secondary.MissionTransition) (*secondary.MissionEventRecord, error) {
	if m.transitionErr != nil {
		return nil, m.transitionErr
	}
	record, ok := m.missions[transition.MissionID]
	if !ok {
		return nil, &coremission.NotFoundError{MissionID: transition.MissionID}
	}
	matched := false
	expected := make([]coremission.Status, len(transition.FromStatuses))
	for i, from := range transition.FromStatuses {
		expected[i] = coremission.Status(from)
		if record.Status == from {
			matched = true
		}
	}
	if !matched {
		return nil, &coremission.TransitionConflictError{
			MissionID: transition.MissionID,
			Expected:  expected,
			Actual:    coremission.Status(record.Status),
		}
	}
	record.Status = transition.ToStatus
	if transition.StartedAt != "" {
		record.StartedAt = transition.StartedAt
	}
	if transition.CompletedAt != "" {
		record.CompletedAt = transition.CompletedAt
	}

	m.eventSeq++
	event := transition.Event
	event.MissionID = transition.MissionID
	if event.ID == "" {
		event.ID = fmt.Sprintf("evt-%03d", m.eventSeq)
	}
	if event.CreatedAt == "" {
		event.CreatedAt = "2026-01-20T12:00:00Z"
	}
	m.transitions = append(m.transitions, &event)
	return &event, nil
}

// Ensure mockEventRepository implements the interface
var _ secondary.EventRepository = (*mockEventRepository)(nil)

// mockEventRepository implements secondary.EventRepository for testing.
type mockEventRepository struct {
	events    []*secondary.MissionEventRecord
	listErr   error
	recentErr error
	countErr  error
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{}
}

func (m *mockEventRepository) ListByMission(ctx context.Context, missionID string) ([]*secondary.MissionEventRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var records []*secondary.MissionEventRecord
	for _, event := range m.events {
		if event.MissionID == missionID {
			records = append(records, event)
		}
	}
	return records, nil
}

func (m *mockEventRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.MissionEventRecord, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	var records []*secondary.MissionEventRecord
	for i := len(m.events) - 1; i >= 0; i-- {
		records = append(records, m.events[i])
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

func (m *mockEventRepository) CountByMission(ctx context.Context, missionID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, event := range m.events {
		if event.MissionID == missionID {
			count++
		}
	}
	return count, nil
}

// Ensure mockWorkExecutor implements the interface
var _ secondary.WorkExecutor = (*mockWorkExecutor)(nil)

// mockWorkExecutor implements secondary.WorkExecutor for testing.
type mockWorkExecutor struct {
	report      *secondary.WorkReport
	executeErr  error
	lastMission *secondary.MissionRecord
}

func newMockWorkExecutor() *mockWorkExecutor {
	return &mockWorkExecutor{
		report: &secondary.WorkReport{
			Steps:   []string{"Doing the work..."},
			Summary: "Work done",
			Notes:   "Everything went fine",
		},
	}
}

func (m *mockWorkExecutor) Execute(ctx context.Context, mission *secondary.MissionRecord) (*secondary.WorkReport, error) {
	m.lastMission = mission
	if m.executeErr != nil {
		return nil, m.executeErr
	}
	return m.report, nil
}

// Ensure mockJournalWriter implements the interface
var _ secondary.JournalWriter = (*mockJournalWriter)(nil)

// mockJournalWriter implements secondary.JournalWriter for testing.
type mockJournalWriter struct {
	entries   []*secondary.MissionEventRecord
	appendErr error
}

func newMockJournalWriter() *mockJournalWriter {
	return &mockJournalWriter{}
}

func (m *mockJournalWriter) Append(ctx context.Context, event *secondary.MissionEventRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, event)
	return nil
}

// Ensure mockStorageGateway implements the interface
var _ secondary.StorageGateway = (*mockStorageGateway)(nil)

// mockStorageGateway implements secondary.StorageGateway for testing.
type mockStorageGateway struct {
	health      secondary.HealthStatus
	healthErr   error
	ensureErr   error
	closeErr    error
	ensureCalls int
	closeCalls  int
}

func newMockStorageGateway() *mockStorageGateway {
	return &mockStorageGateway{
		health: secondary.HealthStatus{OK: true, Message: "ledger OK"},
	}
}

func (m *mockStorageGateway) HealthCheck(ctx context.Context) (secondary.HealthStatus, error) {
	if m.healthErr != nil {
		return secondary.HealthStatus{}, m.healthErr
	}
	return m.health, nil
}

func (m *mockStorageGateway) EnsureSchema() error {
	m.ensureCalls++
	return m.ensureErr
}

func (m *mockStorageGateway) Close() error {
	m.closeCalls++
	return m.closeErr
}
