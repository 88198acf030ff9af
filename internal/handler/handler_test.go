package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory implementation of the store interfaces.
type fakeStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]model.User
	projects  map[uuid.UUID]model.Project
	sessions  map[uuid.UUID]model.Session
	questions map[uuid.UUID]model.Question
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[uuid.UUID]model.User),
		projects:  make(map[uuid.UUID]model.Project),
		sessions:  make(map[uuid.UUID]model.Session),
		questions: make(map[uuid.UUID]model.Question),
	}
}

func (f *fakeStore) Create(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.UserID = uuid.New()
	u.CreatedAt = time.Now()
	f.users[u.UserID] = *u
	return nil
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdateProfile(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.UserID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.UserID] = *u
	return nil
}

type fakeProjects struct{ s *fakeStore }

func (f fakeProjects) Create(ctx context.Context, p *model.Project) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p.ProjectID = uuid.New()
	p.CreatedAt = time.Now()
	f.s.projects[p.ProjectID] = *p
	return nil
}

func (f fakeProjects) SaveCode(ctx context.Context, projectID, owner uuid.UUID, code string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[projectID]
	if !ok || p.CreatedBy != owner {
		return repository.ErrNotFound
	}
	p.Code = code
	f.s.projects[projectID] = p
	return nil
}

func (f fakeProjects) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Project, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []model.Project
	for _, p := range f.s.projects {
		if p.CreatedBy == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProjects) GetByIDAndOwner(ctx context.Context, projectID, owner uuid.UUID) (model.Project, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[projectID]
	if !ok || p.CreatedBy != owner {
		return model.Project{}, repository.ErrNotFound
	}
	return p, nil
}

func (f fakeProjects) Rename(ctx context.Context, projectID, owner uuid.UUID, name string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[projectID]
	if !ok || p.CreatedBy != owner {
		return repository.ErrNotFound
	}
	p.Name = name
	f.s.projects[projectID] = p
	return nil
}

func (f fakeProjects) Delete(ctx context.Context, projectID, owner uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[projectID]
	if !ok || p.CreatedBy != owner {
		return repository.ErrNotFound
	}
	delete(f.s.projects, projectID)
	return nil
}

type fakeSessions struct{ s *fakeStore }

func (f fakeSessions) Create(ctx context.Context, s *model.Session) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	s.SessionID = uuid.New()
	s.CreatedAt = time.Now()
	f.s.sessions[s.SessionID] = *s
	return nil
}

func (f fakeSessions) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []model.Session
	for _, s := range f.s.sessions {
		if s.UserID == userID {
			s.Questions = f.questionsFor(s.SessionID)
			out = append(out, s)
		}
	}
	return out, nil
}

func (f fakeSessions) GetByIDAndOwner(ctx context.Context, sessionID, owner uuid.UUID) (model.Session, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	s, ok := f.s.sessions[sessionID]
	if !ok || s.UserID != owner {
		return model.Session{}, repository.ErrNotFound
	}
	s.Questions = f.questionsFor(sessionID)
	return s, nil
}

func (f fakeSessions) Delete(ctx context.Context, sessionID, owner uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	s, ok := f.s.sessions[sessionID]
	if !ok || s.UserID != owner {
		return repository.ErrNotFound
	}
	delete(f.s.sessions, sessionID)
	// cascade, like the schema's ON DELETE CASCADE
	for id, q := range f.s.questions {
		if q.SessionID == sessionID {
			delete(f.s.questions, id)
		}
	}
	return nil
}

func (f fakeSessions) questionsFor(sessionID uuid.UUID) []model.Question {
	out := []model.Question{}
	for _, q := range f.s.questions {
		if q.SessionID == sessionID {
			out = append(out, q)
		}
	}
	return out
}

type fakeQuestions struct{ s *fakeStore }

func (f fakeQuestions) CreateBatch(ctx context.Context, questions []model.Question) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for i := range questions {
		questions[i].QuestionID = uuid.New()
		questions[i].CreatedAt = time.Now()
		f.s.questions[questions[i].QuestionID] = questions[i]
	}
	return nil
}

func (f fakeQuestions) TogglePin(ctx context.Context, questionID, owner uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	q, ok := f.s.questions[questionID]
	if !ok {
		return false, repository.ErrNotFound
	}
	s, ok := f.s.sessions[q.SessionID]
	if !ok || s.UserID != owner {
		return false, repository.ErrNotFound
	}
	q.IsPinned = !q.IsPinned
	f.s.questions[questionID] = q
	return q.IsPinned, nil
}

// fakeAI returns canned model output.
type fakeAI struct {
	pairs     []model.GeneratedQA
	roadmap   *model.Roadmap
	dsa       []model.DSAQuestion
	reply     string
	rawOutput string // when set, pairs/dsa are recovered through lenientjson
	err       error
}

func (f *fakeAI) InterviewQuestions(ctx context.Context, role, experience, topics string) ([]model.GeneratedQA, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if f.rawOutput != "" {
		var pairs []model.GeneratedQA
		cleaned, err := lenientjson.DecodeArray(f.rawOutput, &pairs)
		return pairs, cleaned, err
	}
	return f.pairs, "", nil
}

func (f *fakeAI) GenerateRoadmap(ctx context.Context, req model.RoadmapReq) (*model.Roadmap, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roadmap, nil
}

func (f *fakeAI) DSAQuestions(ctx context.Context, q model.DSAQuery) ([]model.DSAQuestion, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if f.rawOutput != "" {
		var out []model.DSAQuestion
		cleaned, err := lenientjson.DecodeArray(f.rawOutput, &out)
		return out, cleaned, err
	}
	return f.dsa, "", nil
}

func (f *fakeAI) MentorChat(ctx context.Context, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeRunner struct {
	res      *model.RunCodeRes
	runtimes []model.Runtime
	err      error
}

func (f *fakeRunner) Execute(ctx context.Context, req model.RunCodeReq) (*model.RunCodeRes, error) {
	return f.res, f.err
}

func (f *fakeRunner) Runtimes(ctx context.Context) ([]model.Runtime, error) {
	return f.runtimes, f.err
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	return f.url, f.err
}

func newTestApp(store *fakeStore) *Application {
	return &Application{
		Logger:    zap.NewNop(),
		Users:     store,
		Projects:  fakeProjects{s: store},
		Sessions:  fakeSessions{s: store},
		Questions: fakeQuestions{s: store},
		AI:        &fakeAI{},
		Runner:    &fakeRunner{},
		Uploader:  &fakeUploader{},
		JwtSecret: "0123456789abcdef0123456789abcdef",
		JwtTTL:    time.Hour,
	}
}

// testCtx builds a gin context carrying a JSON body and an authenticated
// user id.
func testCtx(t *testing.T, uid uuid.UUID, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	c.Request = httptest.NewRequest("POST", "/", &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	if uid != uuid.Nil {
		c.Set(ContextUserIDKey, uid)
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// mustSignUp creates a user directly in the store.
func mustSignUp(t *testing.T, store *fakeStore, email string) uuid.UUID {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", FullName: "Test User"}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.UserID
}
