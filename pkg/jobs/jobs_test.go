package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/agent"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUsers struct {
	users []*ent.User
	err   error
}

func (f *fakeUsers) ListOnboarded(ctx context.Context) ([]*ent.User, error) {
	return f.users, f.err
}

type fakeRouter struct {
	insights []models.Insight
	err      error
}

func (f *fakeRouter) Route(ctx context.Context, insight models.Insight) (models.Decision, error) {
	if f.err != nil {
		return models.Decision{}, f.err
	}
	f.insights = append(f.insights, insight)
	return models.Decision{Channel: models.ChannelNotification}, nil
}

type fakeExecutor struct {
	results map[string]*agent.Result // keyed by task user
	calls   int
}

func (f *fakeExecutor) SpawnAndExecute(ctx context.Context, name string, task agent.Task) *agent.Result {
	f.calls++
	if r, ok := f.results[task.User()]; ok {
		return r
	}
	return &agent.Result{AgentName: name, TaskType: task.Type(), Success: true, Data: map[string]interface{}{"signals": []agent.Signal(nil)}}
}

type fakeSignals struct {
	existing map[string]bool // headline -> exists
	entities []string
	created  []services.CreateSignalRequest
}

func (f *fakeSignals) HeadlineExists(ctx context.Context, userID, headline string) (bool, error) {
	return f.existing[headline], nil
}

func (f *fakeSignals) CreateSignal(ctx context.Context, req services.CreateSignalRequest) (*ent.MarketSignal, error) {
	f.created = append(f.created, req)
	return &ent.MarketSignal{ID: "s-1", Headline: req.Headline}, nil
}

func (f *fakeSignals) RecentEntities(ctx context.Context, userID string, since time.Time) ([]string, error) {
	return f.entities, nil
}

// user builds a fleet member in the given timezone.
func user(id, tz string, competitors ...string) *ent.User {
	return &ent.User{ID: id, Timezone: tz, Onboarded: true, TrackedCompetitors: competitors}
}

// fixedNow pins a job's clock.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

// businessHoursUTC is a Wednesday 14:00 UTC instant, inside the default
// 08-18 window for UTC users.
var businessHoursUTC = time.Date(2026, 8, 19, 14, 0, 0, 0, time.UTC)

func TestSignalScan_OffHoursSkipped(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC", "Acme")}}
	exec := &fakeExecutor{}
	job := NewSignalScanJob(users, &fakeSignals{}, exec, &fakeRouter{}, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(time.Date(2026, 8, 19, 3, 0, 0, 0, time.UTC))

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.SkippedOffHours)
	assert.Equal(t, 0, exec.calls, "off-hours users must not trigger scans")
}

func TestSignalScan_TimezoneGateIsPerUser(t *testing.T) {
	// 14:00 UTC is business hours in London but 23:00 in Tokyo.
	users := &fakeUsers{users: []*ent.User{
		user("london", "Europe/London", "Acme"),
		user("tokyo", "Asia/Tokyo", "Acme"),
	}}
	exec := &fakeExecutor{}
	job := NewSignalScanJob(users, &fakeSignals{}, exec, &fakeRouter{}, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 2, summary.UsersChecked)
	assert.Equal(t, 1, summary.SkippedOffHours)
	assert.Equal(t, 1, exec.calls)
}

func TestSignalScan_NoInputsSkipped(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC")}}
	exec := &fakeExecutor{}
	job := NewSignalScanJob(users, &fakeSignals{}, exec, &fakeRouter{}, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.SkippedNoInputs)
	assert.Equal(t, 0, exec.calls)
}

func TestSignalScan_RoutesByRelevance(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC", "Acme")}}
	exec := &fakeExecutor{results: map[string]*agent.Result{
		"u1": {Success: true, Data: map[string]interface{}{"signals": []agent.Signal{
			{Headline: "huge", Entity: "Acme", Relevance: 0.9},
			{Headline: "notable", Entity: "Acme", Relevance: 0.65},
			{Headline: "minor", Entity: "Acme", Relevance: 0.3},
		}}},
	}}
	router := &fakeRouter{}
	signals := &fakeSignals{existing: map[string]bool{}}
	job := NewSignalScanJob(users, signals, exec, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 3, summary.ItemsProduced)
	require.Len(t, router.insights, 3)
	assert.Equal(t, models.PriorityHigh, router.insights[0].Priority)
	assert.Equal(t, models.PriorityMedium, router.insights[1].Priority)
	assert.Equal(t, models.PriorityLow, router.insights[2].Priority)
	assert.Len(t, signals.created, 3)
}

func TestSignalScan_HeadlineIdempotency(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC", "Acme")}}
	exec := &fakeExecutor{results: map[string]*agent.Result{
		"u1": {Success: true, Data: map[string]interface{}{"signals": []agent.Signal{
			{Headline: "already seen", Entity: "Acme", Relevance: 0.9},
			{Headline: "brand new", Entity: "Acme", Relevance: 0.9},
		}}},
	}}
	router := &fakeRouter{}
	signals := &fakeSignals{existing: map[string]bool{"already seen": true}}
	job := NewSignalScanJob(users, signals, exec, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.SkippedExisting)
	assert.Equal(t, 1, summary.ItemsProduced)
	require.Len(t, signals.created, 1)
	assert.Equal(t, "brand new", signals.created[0].Headline)
}

func TestSignalScan_UserFailureDoesNotAbortFleet(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{
		user("broken", "UTC", "Acme"),
		user("fine", "UTC", "Acme"),
	}}
	exec := &fakeExecutor{results: map[string]*agent.Result{
		"broken": {Success: false, Error: "scout exploded"},
		"fine": {Success: true, Data: map[string]interface{}{"signals": []agent.Signal{
			{Headline: "works", Entity: "Acme", Relevance: 0.7},
		}}},
	}}
	router := &fakeRouter{}
	job := NewSignalScanJob(users, &fakeSignals{existing: map[string]bool{}}, exec, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 2, summary.UsersChecked)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.ItemsProduced, "remaining users still processed")
}

type fakeDigests struct {
	existing map[string]bool
	created  []string // weekStart keys
	contents []string
}

func (f *fakeDigests) DigestExists(ctx context.Context, userID, weekStart string) (bool, error) {
	return f.existing[userID+"/"+weekStart], nil
}

func (f *fakeDigests) CreateDigest(ctx context.Context, userID, weekStart, content string, itemCount int) (*ent.WeeklyDigest, error) {
	f.created = append(f.created, userID+"/"+weekStart)
	f.contents = append(f.contents, content)
	return &ent.WeeklyDigest{ID: "d-1"}, nil
}

type fakeSignalReader struct {
	signals []*ent.MarketSignal
}

func (f *fakeSignalReader) ListSince(ctx context.Context, userID string, since time.Time) ([]*ent.MarketSignal, error) {
	return f.signals, nil
}

type fakeBriefingDrainer struct {
	items   []*ent.BriefingItem
	drained int
}

func (f *fakeBriefingDrainer) DrainWindow(ctx context.Context, userID string, from, to time.Time) ([]*ent.BriefingItem, error) {
	f.drained++
	return f.items, nil
}

// mondayDigestUTC is Monday 07:30 UTC.
var mondayDigestUTC = time.Date(2026, 8, 24, 7, 30, 0, 0, time.UTC)

func newDigestJob(users *fakeUsers, digests *fakeDigests, reader *fakeSignalReader, drainer *fakeBriefingDrainer, router *fakeRouter) *WeeklyDigestJob {
	return NewWeeklyDigestJob(users, digests, reader, drainer, router, config.DefaultJobsConfig(), testLogger())
}

func TestWeeklyDigest_FiresMondayDigestHourUserLocal(t *testing.T) {
	// 07:30 UTC Monday: digest hour for a UTC user, but 16:30 in Tokyo.
	users := &fakeUsers{users: []*ent.User{
		user("utc", "UTC"),
		user("tokyo", "Asia/Tokyo"),
	}}
	digests := &fakeDigests{existing: map[string]bool{}}
	reader := &fakeSignalReader{signals: []*ent.MarketSignal{{Headline: "h1"}}}
	drainer := &fakeBriefingDrainer{}
	router := &fakeRouter{}
	job := newDigestJob(users, digests, reader, drainer, router)
	job.now = fixedNow(mondayDigestUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.ItemsProduced)
	assert.Equal(t, 1, summary.SkippedOffHours)
	require.Len(t, digests.created, 1)
	assert.Equal(t, "utc/2026-08-24", digests.created[0])
	require.Len(t, router.insights, 1)
	assert.Equal(t, models.CategoryWeeklyDigest, router.insights[0].Category)
	assert.Equal(t, models.PriorityMedium, router.insights[0].Priority)
}

func TestWeeklyDigest_OncePerWeek(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("utc", "UTC")}}
	digests := &fakeDigests{existing: map[string]bool{"utc/2026-08-24": true}}
	reader := &fakeSignalReader{signals: []*ent.MarketSignal{{Headline: "h1"}}}
	drainer := &fakeBriefingDrainer{}
	job := newDigestJob(users, digests, reader, drainer, &fakeRouter{})
	job.now = fixedNow(mondayDigestUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.SkippedExisting)
	assert.Empty(t, digests.created)
	assert.Equal(t, 0, drainer.drained, "existing digest must not drain the queue")
}

func TestWeeklyDigest_EmptyWeekProducesNothing(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("utc", "UTC")}}
	digests := &fakeDigests{existing: map[string]bool{}}
	job := newDigestJob(users, digests, &fakeSignalReader{}, &fakeBriefingDrainer{}, &fakeRouter{})
	job.now = fixedNow(mondayDigestUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.SkippedNoInputs)
	assert.Empty(t, digests.created)
}

func TestWeeklyDigest_IncludesDrainedBriefingItems(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("utc", "UTC")}}
	digests := &fakeDigests{existing: map[string]bool{}}
	drainer := &fakeBriefingDrainer{items: []*ent.BriefingItem{{Title: "parked insight", Message: "low prio"}}}
	job := newDigestJob(users, digests, &fakeSignalReader{}, drainer, &fakeRouter{})
	job.now = fixedNow(mondayDigestUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.ItemsProduced)
	require.Len(t, digests.contents, 1)
	assert.Contains(t, digests.contents[0], "parked insight")
}

type fakeCommitments struct {
	overdue []*ent.Commitment
	nudged  []string
}

func (f *fakeCommitments) OverdueUnnudged(ctx context.Context, userID string, now time.Time) ([]*ent.Commitment, error) {
	return f.overdue, nil
}

func (f *fakeCommitments) MarkNudged(ctx context.Context, commitmentID string, at time.Time) error {
	f.nudged = append(f.nudged, commitmentID)
	return nil
}

func TestCommitmentSweep_RoutesHighAndMarks(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC")}}
	commitments := &fakeCommitments{overdue: []*ent.Commitment{
		{ID: "c-1", Description: "send the proposal", Contact: strPtr("Dana"), DueAt: businessHoursUTC.Add(-48 * time.Hour)},
	}}
	router := &fakeRouter{}
	job := NewCommitmentSweepJob(users, commitments, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.ItemsProduced)
	require.Len(t, router.insights, 1)
	assert.Equal(t, models.PriorityHigh, router.insights[0].Priority)
	assert.Equal(t, models.CategoryOverdueCommitment, router.insights[0].Category)
	assert.Contains(t, router.insights[0].Message, "Dana")
	assert.Equal(t, []string{"c-1"}, commitments.nudged)
}

func TestCommitmentSweep_RouteFailureLeavesUnmarked(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC")}}
	commitments := &fakeCommitments{overdue: []*ent.Commitment{
		{ID: "c-1", Description: "send the proposal", DueAt: businessHoursUTC.Add(-time.Hour)},
	}}
	router := &fakeRouter{err: errors.New("store down")}
	job := NewCommitmentSweepJob(users, commitments, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.Errors)
	assert.Empty(t, commitments.nudged, "failed delivery stays eligible for the next sweep")
}

type fakeMeetings struct {
	meetings []Meeting
}

func (f *fakeMeetings) RecentlyEnded(ctx context.Context, userID string, now time.Time) ([]Meeting, error) {
	return f.meetings, nil
}

type fakeDebriefs struct {
	existing map[string]bool
	created  []string
}

func (f *fakeDebriefs) DebriefExists(ctx context.Context, userID, meetingID string) (bool, error) {
	return f.existing[meetingID], nil
}

func (f *fakeDebriefs) CreateDebrief(ctx context.Context, userID, meetingID, meetingTitle string) (*ent.MeetingDebrief, error) {
	f.created = append(f.created, meetingID)
	return &ent.MeetingDebrief{ID: "md-1"}, nil
}

func TestDebriefPrompt_OncePerMeeting(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("u1", "UTC")}}
	meetings := &fakeMeetings{meetings: []Meeting{
		{ID: "m-1", Title: "Acme discovery call"},
		{ID: "m-2", Title: "Pipeline review"},
	}}
	debriefs := &fakeDebriefs{existing: map[string]bool{"m-2": true}}
	router := &fakeRouter{}
	job := NewDebriefPromptJob(users, meetings, debriefs, router, config.DefaultJobsConfig(), testLogger())
	job.now = fixedNow(businessHoursUTC)

	summary := job.Run(context.Background())
	assert.Equal(t, 1, summary.ItemsProduced)
	assert.Equal(t, 1, summary.SkippedExisting)
	assert.Equal(t, []string{"m-1"}, debriefs.created)
	require.Len(t, router.insights, 1)
	assert.Equal(t, models.CategoryDebriefPrompt, router.insights[0].Category)
}

func TestRunFleet_PanicIsContained(t *testing.T) {
	users := &fakeUsers{users: []*ent.User{user("boom", "UTC"), user("ok", "UTC")}}
	var processed []string

	summary := runFleet(context.Background(), "test_job", users, testLogger(),
		func(ctx context.Context, u *ent.User, s *models.RunSummary) error {
			if u.ID == "boom" {
				panic("nil map write")
			}
			processed = append(processed, u.ID)
			return nil
		})

	assert.Equal(t, 2, summary.UsersChecked)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, []string{"ok"}, processed)
}
