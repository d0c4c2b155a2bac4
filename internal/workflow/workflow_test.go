package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/metrics"
	"github.com/spigell/hiring-portal/internal/session"
	"github.com/spigell/hiring-portal/internal/upload"
)

type fixedSession session.Session

func (s fixedSession) Current() session.Session { return session.Session(s) }

func authenticated() fixedSession {
	return fixedSession{State: session.StateAuthenticated, Username: "jane", Role: session.RoleCandidate, Token: "t"}
}

func guest() fixedSession {
	return fixedSession{State: session.StateGuest, Role: session.RoleCandidate}
}

type fakeMatcher struct {
	calls   atomic.Int32
	resp    *hiring.MatchResponse
	err     error
	started chan struct{}
	release chan struct{}
}

func (m *fakeMatcher) MatchResume(ctx context.Context, _ string, _ upload.File) (*hiring.MatchResponse, error) {
	m.calls.Add(1)
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	return m.resp, m.err
}

type fakeRanker struct {
	calls       atomic.Int32
	resp        *hiring.RankResponse
	err         error
	variant     Variant
	jobID       string
	description string
	started     chan struct{}
	release     chan struct{}
}

func (r *fakeRanker) wait() {
	if r.started != nil {
		close(r.started)
	}
	if r.release != nil {
		<-r.release
	}
}

func (r *fakeRanker) BulkAnalyze(_ context.Context, jd string, _ []upload.File) (*hiring.RankResponse, error) {
	r.calls.Add(1)
	r.variant = VariantBulk
	r.description = jd
	r.wait()
	return r.resp, r.err
}

func (r *fakeRanker) RankCandidates(_ context.Context, jobID, jd string, _ []upload.File) (*hiring.RankResponse, error) {
	r.calls.Add(1)
	r.variant = VariantJobScoped
	r.jobID = jobID
	r.description = jd
	r.wait()
	return r.resp, r.err
}

type fakeChecker struct {
	calls   atomic.Int32
	resp    *hiring.BiasResponse
	err     error
	started chan struct{}
	release chan struct{}
}

func (c *fakeChecker) CheckBias(_ context.Context, _, _ upload.File) (*hiring.BiasResponse, error) {
	c.calls.Add(1)
	if c.started != nil {
		close(c.started)
	}
	if c.release != nil {
		<-c.release
	}
	return c.resp, c.err
}

func resume(name string) upload.File {
	return upload.FromText(name, "resume of "+name)
}

func job() *hiring.JobPosting {
	company := "Tech Corp"
	return &hiring.JobPosting{ID: "1", Title: "Senior React Developer", Company: &company, Description: "React developer"}
}

func fastProgress() ProgressConfig {
	return ProgressConfig{Interval: time.Millisecond, Cap: 90, MaxStep: 30}
}

func float(v float64) *float64 { return &v }

func TestAnalysisRejectsBeforeDispatch(t *testing.T) {
	tests := []struct {
		name    string
		session SessionSource
		req     MatchRequest
		want    error
	}{
		{name: "missing file", session: authenticated(), req: MatchRequest{Job: job()}, want: ErrMissingFile},
		{name: "missing file wins over guest", session: guest(), req: MatchRequest{}, want: ErrMissingFile},
		{name: "no target", session: authenticated(), req: MatchRequest{Resume: resume("cv.pdf")}, want: ErrNoTargetSelected},
		{name: "guest", session: guest(), req: MatchRequest{Resume: resume("cv.pdf"), Job: job()}, want: ErrGuestNotPermitted},
		{name: "anonymous", session: fixedSession(session.Anonymous()), req: MatchRequest{Resume: resume("cv.pdf"), Job: job()}, want: ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := &fakeMatcher{}
			a := NewAnalysis(matcher, Deps{Session: tt.session}, fastProgress())

			result, err := a.Submit(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if result != nil {
				t.Fatalf("expected no result, got %+v", result)
			}
			if calls := matcher.calls.Load(); calls != 0 {
				t.Fatalf("expected zero network calls, got %d", calls)
			}
			if a.State() != StateIdle {
				t.Fatalf("expected idle state, got %s", a.State())
			}
		})
	}
}

func TestAnalysisSynthesizesOnFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	matcher := &fakeMatcher{err: errors.New("dial tcp 127.0.0.1:8000: connection refused")}
	a := NewAnalysis(matcher, Deps{Session: authenticated(), Logger: zap.New(core)}, fastProgress())

	result, err := a.Submit(context.Background(), MatchRequest{Resume: resume("cv.pdf"), Job: job()})
	if err != nil {
		t.Fatalf("expected failure to be absorbed, got %v", err)
	}
	if result.Origin != OriginSynthetic {
		t.Fatalf("expected synthetic origin, got %s", result.Origin)
	}
	if !strings.Contains(result.Message, "connection refused") {
		t.Fatalf("expected message to carry the error, got %q", result.Message)
	}
	if result.MatchScore != 72 || result.ExperienceYears != 3 {
		t.Fatalf("unexpected synthetic values: %+v", result)
	}
	if result.VerifiedProjectCount != 2 {
		t.Fatalf("expected 2 verified projects, got %d", result.VerifiedProjectCount)
	}
	if result.JobTitle != "Senior React Developer" || result.Company != "Tech Corp" {
		t.Fatalf("expected job labels to be kept, got %q at %q", result.JobTitle, result.Company)
	}
	if a.State() != StateSettled {
		t.Fatalf("expected settled state, got %s", a.State())
	}

	warned := logs.FilterMessage("match failed, substituting synthetic result").FilterLevelExact(zapcore.WarnLevel)
	if warned.Len() != 1 {
		t.Fatalf("expected one warning, got %d", warned.Len())
	}
	fields := warned.All()[0].ContextMap()
	if fields["flow"] != "match" || fields["request_id"] == "" {
		t.Fatalf("expected workflow fields on the warning, got %v", fields)
	}

	settled := logs.FilterMessage("match settled").All()
	if len(settled) != 1 {
		t.Fatalf("expected one settle entry, got %d", len(settled))
	}
	fields = settled[0].ContextMap()
	if fields["origin"] != "synthetic" || fields["outcome"] != "synthetic" || fields["request_id"] != warned.All()[0].ContextMap()["request_id"] {
		t.Fatalf("unexpected settle fields %v", fields)
	}
	if _, ok := fields["took"]; !ok {
		t.Fatalf("expected settle duration, got %v", fields)
	}
}

func TestAnalysisLiveDefaults(t *testing.T) {
	matcher := &fakeMatcher{resp: &hiring.MatchResponse{
		AllSkills:     []string{"Go", "go", " SQL ", ""},
		MatchScore:    float(140),
		MatchedSkills: []string{"Go"},
		GithubProjects: []hiring.GithubProject{
			{Username: "jane", RepoName: "a", Exists: true},
			{Username: "jane", RepoName: "b", Exists: false},
			{Username: "jane", RepoName: "c", Exists: true},
		},
		ProjectsVerified: intPtr(7),
	}}
	a := NewAnalysis(matcher, Deps{Session: authenticated()}, fastProgress())

	result, err := a.Submit(context.Background(), MatchRequest{Resume: resume("cv.pdf"), Job: job()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLive || result.Message != liveMatchMessage {
		t.Fatalf("expected live result, got %s %q", result.Origin, result.Message)
	}
	if result.MatchScore != 100 {
		t.Fatalf("expected score clamped to 100, got %v", result.MatchScore)
	}
	if result.ExperienceYears != 0 || result.BiasRisk != BiasRiskLow {
		t.Fatalf("expected neutral defaults, got %v years and %s risk", result.ExperienceYears, result.BiasRisk)
	}
	if got := strings.Join(result.ExtractedSkills, ","); got != "Go,SQL" {
		t.Fatalf("unexpected skills %q", got)
	}
	if result.MissingSkills == nil || len(result.MissingSkills) != 0 {
		t.Fatalf("expected empty missing skills, got %#v", result.MissingSkills)
	}
	if result.VerifiedProjectCount != 2 {
		t.Fatalf("expected verified count from projects, got %d", result.VerifiedProjectCount)
	}
}

func TestAnalysisRejectsWhileInFlight(t *testing.T) {
	matcher := &fakeMatcher{
		resp:    &hiring.MatchResponse{MatchScore: float(80)},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	a := NewAnalysis(matcher, Deps{Session: authenticated()}, fastProgress())
	req := MatchRequest{Resume: resume("cv.pdf"), Job: job()}

	done := make(chan *AnalysisResult)
	go func() {
		result, err := a.Submit(context.Background(), req)
		if err != nil {
			t.Errorf("first submission failed: %v", err)
		}
		done <- result
	}()

	<-matcher.started
	if a.State() != StateInFlight {
		t.Fatalf("expected in flight, got %s", a.State())
	}

	if _, err := a.Submit(context.Background(), req); !errors.Is(err, ErrAlreadyInFlight) {
		t.Fatalf("expected ErrAlreadyInFlight, got %v", err)
	}

	close(matcher.release)
	result := <-done
	if result == nil || result.MatchScore != 80 {
		t.Fatalf("unexpected first result %+v", result)
	}
	if calls := matcher.calls.Load(); calls != 1 {
		t.Fatalf("expected exactly one network call, got %d", calls)
	}

	// a settled coordinator accepts a fresh submission
	matcher.started, matcher.release = nil, nil
	if _, err := a.Submit(context.Background(), req); err != nil {
		t.Fatalf("resubmission failed: %v", err)
	}
}

func TestBatchRejectsWhileInFlight(t *testing.T) {
	ranker := &fakeRanker{
		resp:    &hiring.RankResponse{Candidates: []hiring.CandidateResult{{Filename: "a.pdf", MatchScore: 70}}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	b := NewBatch(ranker, Deps{Session: authenticated()})
	req := BatchRequest{JobDescription: "Go developer", Resumes: []upload.File{resume("a.pdf")}}

	done := make(chan *BatchResult)
	go func() {
		result, err := b.Submit(context.Background(), req)
		if err != nil {
			t.Errorf("first submission failed: %v", err)
		}
		done <- result
	}()

	<-ranker.started
	if b.State() != StateInFlight {
		t.Fatalf("expected in flight, got %s", b.State())
	}

	if _, err := b.Submit(context.Background(), req); !errors.Is(err, ErrAlreadyInFlight) {
		t.Fatalf("expected ErrAlreadyInFlight, got %v", err)
	}

	close(ranker.release)
	if result := <-done; result == nil || len(result.Candidates) != 1 {
		t.Fatalf("unexpected first result %+v", result)
	}
	if calls := ranker.calls.Load(); calls != 1 {
		t.Fatalf("expected exactly one network call, got %d", calls)
	}
}

func TestBiasRejectsWhileInFlight(t *testing.T) {
	checker := &fakeChecker{
		resp:    &hiring.BiasResponse{BiasRisk: "LOW"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	b := NewBias(checker, Deps{Session: authenticated()}, fastProgress())
	req := BiasRequest{JobDescription: upload.FromText("jd.txt", "Go developer"), Resume: resume("cv.pdf")}

	done := make(chan *BiasResult)
	go func() {
		result, err := b.Submit(context.Background(), req)
		if err != nil {
			t.Errorf("first submission failed: %v", err)
		}
		done <- result
	}()

	<-checker.started
	if b.State() != StateInFlight {
		t.Fatalf("expected in flight, got %s", b.State())
	}

	if _, err := b.Submit(context.Background(), req); !errors.Is(err, ErrAlreadyInFlight) {
		t.Fatalf("expected ErrAlreadyInFlight, got %v", err)
	}

	close(checker.release)
	if result := <-done; result == nil || result.Origin != OriginLive {
		t.Fatalf("unexpected first result %+v", result)
	}
	if calls := checker.calls.Load(); calls != 1 {
		t.Fatalf("expected exactly one network call, got %d", calls)
	}
}

type progressLog struct {
	mu     sync.Mutex
	values []float64
	ready  chan struct{}
	once   sync.Once
}

func (p *progressLog) record(v float64) {
	p.mu.Lock()
	p.values = append(p.values, v)
	n := len(p.values)
	p.mu.Unlock()

	if n >= 4 {
		p.once.Do(func() { close(p.ready) })
	}
}

func (p *progressLog) snapshot() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]float64(nil), p.values...)
}

func TestAnalysisProgress(t *testing.T) {
	progress := &progressLog{ready: make(chan struct{})}
	release := make(chan struct{})
	matcher := &fakeMatcher{resp: &hiring.MatchResponse{}, release: release}
	a := NewAnalysis(matcher, Deps{Session: authenticated()}, fastProgress())

	go func() {
		select {
		case <-progress.ready:
		case <-time.After(2 * time.Second):
		}
		close(release)
	}()

	if _, err := a.Submit(context.Background(), MatchRequest{Resume: resume("cv.pdf"), Job: job(), OnProgress: progress.record}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := progress.snapshot()
	if len(values) < 2 {
		t.Fatalf("expected several progress values, got %v", values)
	}
	if values[0] != 0 {
		t.Fatalf("expected progress to start at 0, got %v", values[0])
	}
	if last := values[len(values)-1]; last != 100 {
		t.Fatalf("expected final progress of 100, got %v", last)
	}
	for i := 1; i < len(values)-1; i++ {
		if values[i] < values[i-1] {
			t.Fatalf("progress went backwards: %v", values)
		}
		if values[i] >= 100 || values[i] > 90 {
			t.Fatalf("progress reached completion before settling: %v", values)
		}
	}

	time.Sleep(20 * time.Millisecond)
	if after := progress.snapshot(); len(after) != len(values) {
		t.Fatalf("progress emitted after settling: %v", after[len(values):])
	}
}

func TestProgressStopsAtCap(t *testing.T) {
	var (
		mu     sync.Mutex
		values []float64
	)
	ticker := startProgress(ProgressConfig{Interval: time.Millisecond, Cap: 50, MaxStep: 30}, func() float64 { return 1 }, func(v float64) {
		mu.Lock()
		values = append(values, v)
		mu.Unlock()
	})
	time.Sleep(20 * time.Millisecond)
	ticker.Stop()
	ticker.Stop()

	mu.Lock()
	defer mu.Unlock()
	if len(values) != 3 || values[1] != 30 || values[2] != 50 {
		t.Fatalf("expected 0, 30, 50, got %v", values)
	}
}

func TestBatchTopCandidateFirstMaximum(t *testing.T) {
	ranker := &fakeRanker{resp: &hiring.RankResponse{
		TotalCandidates: 4,
		Candidates: []hiring.CandidateResult{
			{Filename: "a.pdf", MatchScore: 55},
			{Filename: "b.pdf", MatchScore: 92},
			{Filename: "c.pdf", MatchScore: 92},
			{Candidate: "d.pdf", MatchScore: 40},
		},
		TopCandidate: &hiring.CandidateResult{Filename: "c.pdf", MatchScore: 92},
	}}
	b := NewBatch(ranker, Deps{Session: authenticated()})

	result, err := b.Submit(context.Background(), BatchRequest{
		JobDescription: "Go developer",
		Resumes:        []upload.File{resume("a.pdf"), resume("b.pdf"), resume("c.pdf"), resume("d.pdf")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := result.TopCandidate()
	if top == nil || top.Filename != "b.pdf" || result.TopIndex != 1 {
		t.Fatalf("expected b.pdf as top candidate, got %+v", top)
	}
	if result.TotalCandidates != 4 || len(result.Candidates) != 4 {
		t.Fatalf("unexpected totals %d/%d", result.TotalCandidates, len(result.Candidates))
	}
	if result.Candidates[3].Filename != "d.pdf" || result.Candidates[0].MatchScore != 55 {
		t.Fatalf("candidate order or records changed: %+v", result.Candidates)
	}
	if ranker.variant != VariantBulk || ranker.description != "Go developer" {
		t.Fatalf("unexpected dispatch %s %q", ranker.variant, ranker.description)
	}
}

func TestBatchEmptyRanking(t *testing.T) {
	ranker := &fakeRanker{resp: &hiring.RankResponse{}}
	b := NewBatch(ranker, Deps{Session: authenticated()})

	result, err := b.Submit(context.Background(), BatchRequest{JobDescription: "x", Resumes: []upload.File{resume("a.pdf")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TopCandidate() != nil {
		t.Fatalf("expected no top candidate, got %+v", result.TopCandidate())
	}
}

func TestBatchFailureSurfacesError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	apiErr := &hiring.APIError{StatusCode: 500, Detail: "boom"}
	ranker := &fakeRanker{err: apiErr}
	b := NewBatch(ranker, Deps{Session: authenticated(), Logger: zap.New(core)})

	result, err := b.Submit(context.Background(), BatchRequest{
		Variant:        VariantJobScoped,
		JobID:          "42",
		JobDescription: "Go developer",
		Resumes:        []upload.File{resume("a.pdf")},
	})
	if err != apiErr {
		t.Fatalf("expected the ranking error verbatim, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no result on failure, got %+v", result)
	}
	if ranker.variant != VariantJobScoped || ranker.jobID != "42" {
		t.Fatalf("expected job-scoped dispatch, got %s %q", ranker.variant, ranker.jobID)
	}
	if logs.FilterMessage("ranking failed").FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Fatalf("expected ranking failure to be logged, got %v", logs.All())
	}
	if b.State() != StateSettled {
		t.Fatalf("expected settled state, got %s", b.State())
	}
}

func TestBatchRejectsBeforeDispatch(t *testing.T) {
	tests := []struct {
		name    string
		session SessionSource
		req     BatchRequest
		want    error
	}{
		{name: "no description", session: authenticated(), req: BatchRequest{Resumes: []upload.File{resume("a.pdf")}}, want: ErrMissingJobDescription},
		{name: "blank description file", session: authenticated(), req: BatchRequest{DescriptionFile: upload.FromText("jd.txt", "  "), Resumes: []upload.File{resume("a.pdf")}}, want: ErrMissingJobDescription},
		{name: "no resumes", session: authenticated(), req: BatchRequest{JobDescription: "x"}, want: ErrNoResumesSelected},
		{name: "no job", session: authenticated(), req: BatchRequest{Variant: VariantJobScoped, JobDescription: "x", Resumes: []upload.File{resume("a.pdf")}}, want: ErrNoJobContext},
		{name: "guest", session: guest(), req: BatchRequest{JobDescription: "x", Resumes: []upload.File{resume("a.pdf")}}, want: ErrGuestNotPermitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranker := &fakeRanker{}
			b := NewBatch(ranker, Deps{Session: tt.session})

			if _, err := b.Submit(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if calls := ranker.calls.Load(); calls != 0 {
				t.Fatalf("expected zero network calls, got %d", calls)
			}
		})
	}
}

func TestBatchDescriptionFromFile(t *testing.T) {
	ranker := &fakeRanker{resp: &hiring.RankResponse{}}
	b := NewBatch(ranker, Deps{Session: authenticated()})

	_, err := b.Submit(context.Background(), BatchRequest{
		DescriptionFile: upload.FromText("jd.txt", "Data scientist\n"),
		Resumes:         []upload.File{resume("a.pdf")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranker.description != "Data scientist" {
		t.Fatalf("expected description from file, got %q", ranker.description)
	}
}

func TestBiasFallbackAndDefaults(t *testing.T) {
	jd := upload.FromText("jd.txt", "We need a rockstar")
	cv := resume("cv.pdf")

	failing := NewBias(&fakeChecker{err: errors.New("timeout")}, Deps{Session: authenticated()}, fastProgress())
	result, err := failing.Submit(context.Background(), BiasRequest{JobDescription: jd, Resume: cv})
	if err != nil {
		t.Fatalf("expected failure to be absorbed, got %v", err)
	}
	if result.Origin != OriginSynthetic || result.OverallScore != 95 || result.BiasRisk != BiasRiskLow {
		t.Fatalf("unexpected synthetic result %+v", result)
	}
	if !strings.Contains(result.Message, "timeout") || len(result.Findings) != 3 || len(result.Recommendations) != 3 {
		t.Fatalf("unexpected synthetic narrative %+v", result)
	}

	live := NewBias(&fakeChecker{resp: &hiring.BiasResponse{BiasRisk: "HIGH"}}, Deps{Session: authenticated()}, fastProgress())
	result, err = live.Submit(context.Background(), BiasRequest{JobDescription: jd, Resume: cv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLive || result.BiasRisk != BiasRiskHigh || result.OverallScore != defaultBiasScore {
		t.Fatalf("unexpected live result %+v", result)
	}
	if result.JDFilename != "jd.txt" || result.ResumeFilename != "cv.pdf" {
		t.Fatalf("expected local file names, got %q and %q", result.JDFilename, result.ResumeFilename)
	}
	if result.Findings[0] != defaultFindings[0] || result.Recommendations[2] != defaultRecommendations[2] {
		t.Fatalf("expected default narrative, got %+v", result)
	}
}

func TestBiasRejectsBeforeDispatch(t *testing.T) {
	checker := &fakeChecker{}
	b := NewBias(checker, Deps{Session: authenticated()}, fastProgress())

	if _, err := b.Submit(context.Background(), BiasRequest{Resume: resume("cv.pdf")}); !errors.Is(err, ErrMissingJobDescription) {
		t.Fatalf("expected ErrMissingJobDescription, got %v", err)
	}
	if _, err := b.Submit(context.Background(), BiasRequest{JobDescription: upload.FromText("jd.txt", "x")}); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
	if checker.calls.Load() != 0 {
		t.Fatalf("expected zero network calls")
	}
}

func TestCoordinatorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	a := NewAnalysis(&fakeMatcher{err: errors.New("down")}, Deps{Session: authenticated(), Metrics: rec}, fastProgress())
	_, _ = a.Submit(context.Background(), MatchRequest{Job: job()})
	_, _ = a.Submit(context.Background(), MatchRequest{Resume: resume("cv.pdf"), Job: job()})

	expected := `
# HELP hiring_portal_submissions_rejected_total Submissions rejected before dispatch, by flow and reason.
# TYPE hiring_portal_submissions_rejected_total counter
hiring_portal_submissions_rejected_total{flow="match",reason="missing_file"} 1
# HELP hiring_portal_submissions_settled_total Dispatched submissions by flow and outcome.
# TYPE hiring_portal_submissions_settled_total counter
hiring_portal_submissions_settled_total{flow="match",outcome="synthetic"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"hiring_portal_submissions_rejected_total", "hiring_portal_submissions_settled_total"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestParseBiasRisk(t *testing.T) {
	cases := map[string]BiasRisk{
		"":         BiasRiskLow,
		"low":      BiasRiskLow,
		"Medium":   BiasRiskMedium,
		"moderate": BiasRiskMedium,
		" HIGH ":   BiasRiskHigh,
		"unknown":  BiasRiskLow,
	}
	for in, want := range cases {
		if got := ParseBiasRisk(in); got != want {
			t.Fatalf("ParseBiasRisk(%q) = %s, want %s", in, got, want)
		}
	}
}
