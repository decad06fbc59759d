package handler_test

import (
	"NatureNet/config"
	"NatureNet/dao"
	"NatureNet/handler"
	"NatureNet/internal/testutil"
	"NatureNet/models"
	"NatureNet/pkg/server"
	"NatureNet/service"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code int             `json:"status_code"`
	Msg  string          `json:"status_txt"`
	Data json.RawMessage `json:"data"`
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	cfg    *config.Config
	engine *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	db := testutil.NewDB(t)
	cfg := &config.Config{
		App: &config.App{Env: "test"},
		Upload: &config.Upload{
			Dir:               t.TempDir(),
			Field:             "photo",
			AllowedExtensions: []string{"txt", "pdf", "png", "jpg", "jpeg", "gif"},
			MaxSize:           1 << 20,
			Storage:           config.StorageLocal,
		},
	}

	accounts := dao.NewAccountDAO(db)
	notes := dao.NewNoteDAO(db)
	contexts := dao.NewContextDAO(db)
	medias := dao.NewMediaDAO(db)
	feedbacks := dao.NewFeedbackDAO(db)
	sites := dao.NewSiteDAO(db)

	feedbackService := &service.FeedbackService{FeedbackDAO: feedbacks, AccountDAO: accounts, NoteDAO: notes, MediaDAO: medias}
	storage, err := service.NewStorage(cfg)
	require.NoError(t, err)

	engine := server.NewGinEngine(&server.Handlers{
		Account: &handler.Account{
			AccountService: &service.AccountService{AccountDAO: accounts, NoteDAO: notes, FeedbackDAO: feedbacks},
		},
		Note: &handler.Note{
			NoteService:     &service.NoteService{NoteDAO: notes, AccountDAO: accounts, ContextDAO: contexts},
			FeedbackService: feedbackService,
		},
		Media: &handler.Media{
			MediaService:    &service.MediaService{MediaDAO: medias, NoteDAO: notes},
			FeedbackService: feedbackService,
		},
		Context:  &handler.Context{ContextService: &service.ContextService{ContextDAO: contexts, NoteDAO: notes}},
		Feedback: &handler.Feedback{FeedbackService: feedbackService},
		Site:     &handler.Site{SiteService: &service.SiteService{SiteDAO: sites, ContextDAO: contexts}},
		Upload: &handler.Upload{
			Config:        cfg,
			UploadService: &service.UploadService{Conf: cfg.Upload, Storage: storage},
		},
	})
	return &testApp{t: t, db: db, cfg: cfg, engine: engine}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string) (*httptest.ResponseRecorder, envelope) {
	w := a.do(httptest.NewRequest(http.MethodGet, path, nil))
	return w, a.decode(w)
}

func (a *testApp) postForm(path string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := a.do(req)
	return w, a.decode(w)
}

func (a *testApp) postJSON(path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := a.do(req)
	return w, a.decode(w)
}

func (a *testApp) decode(w *httptest.ResponseRecorder) envelope {
	a.t.Helper()
	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("other", "value"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := app.do(httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestAccount_CreateAndGet(t *testing.T) {
	app := newTestApp(t)

	w, env := app.postForm("/api/account/new/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, env.Code)
	assert.Equal(t, "OK", env.Msg)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "alice", created["username"])
	assert.NotContains(t, created, "password")

	w, env = app.postForm("/api/account/new/alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, env.Code)
	assert.Contains(t, env.Msg, "already taken")

	w, env = app.get("/api/account/alice")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"alice"`)

	w, env = app.get("/api/accounts/count")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", string(env.Data))

	w, env = app.get("/api/account/nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 404, env.Code)
}

func TestAccount_EmptyLists(t *testing.T) {
	app := newTestApp(t)
	testutil.CreateAccount(t, app.db, "bob")

	for _, path := range []string{"/api/account/bob/notes", "/api/account/bob/feedbacks"} {
		w, env := app.get(path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", string(env.Data), path)
	}

	w, env := app.get("/api/accounts")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"bob"`)
}

func TestNote_CreateAndList(t *testing.T) {
	app := newTestApp(t)
	testutil.CreateAccount(t, app.db, "alice")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")

	w, env := app.postForm("/api/note/new/alice", url.Values{
		"content":  {"hello"},
		"context":  {"park"},
		"kind":     {"Idea"},
		"latitude": {"39.19"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var note struct {
		ID        uint64  `json:"id"`
		Kind      string  `json:"kind"`
		Content   string  `json:"content"`
		ContextID uint64  `json:"context_id"`
		Latitude  float64 `json:"latitude"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Equal(t, "Idea", note.Kind)
	assert.Equal(t, "hello", note.Content)
	assert.Equal(t, park.ID, note.ContextID)
	assert.InDelta(t, 39.19, note.Latitude, 1e-9)

	_, env = app.get("/api/account/alice/notes")
	assert.Contains(t, string(env.Data), `"content":"hello"`)

	_, env = app.get(fmt.Sprintf("/api/context/%d/notes", park.ID))
	assert.Contains(t, string(env.Data), `"content":"hello"`)

	w, env = app.get(fmt.Sprintf("/api/note/%d", note.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"alice"`)
}

func TestNote_CreateMissingParameters(t *testing.T) {
	app := newTestApp(t)
	testutil.CreateAccount(t, app.db, "alice")
	testutil.CreateContext(t, app.db, models.ContextActivity, "park")

	cases := map[string]struct {
		path string
		form url.Values
	}{
		"no content":      {"/api/note/new/alice", url.Values{"context": {"park"}, "kind": {"Idea"}}},
		"unknown context": {"/api/note/new/alice", url.Values{"content": {"x"}, "context": {"zoo"}, "kind": {"Idea"}}},
		"unknown account": {"/api/note/new/carol", url.Values{"content": {"x"}, "context": {"park"}, "kind": {"Idea"}}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, env := app.postForm(tc.path, tc.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "some parameters are missing", env.Msg)
		})
	}

	var count int64
	require.NoError(t, app.db.Model(&models.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNote_InvalidID(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.get("/api/note/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := app.get("/api/note/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 404, env.Code)
}

func TestMedia_Create(t *testing.T) {
	app := newTestApp(t)
	alice := testutil.CreateAccount(t, app.db, "alice")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	note := testutil.CreateNote(t, app.db, alice, park, "hello")

	w, env := app.postJSON("/api/media/new", fmt.Sprintf(`{"kind":"Photo","title":"sunset","note_id":"%d"}`, note.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"link":"unknown"`)
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"note_id":%d`, note.ID))

	w, _ = app.postJSON("/api/media/new", fmt.Sprintf(`{"kind":"Photo","title":"dawn","note_id":%d,"link":"http://x/y.jpg"}`, note.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = app.postJSON("/api/media/new", `{"kind":"Photo","title":"lost","note_id":999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = app.postJSON("/api/media/new", `{"kind":"Photo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "some parameters are missing", env.Msg)

	w, _ = app.postJSON("/api/media/new", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, env = app.get(fmt.Sprintf("/api/note/%d", note.ID))
	assert.Contains(t, string(env.Data), `"title":"sunset"`)
	assert.Contains(t, string(env.Data), `"title":"dawn"`)
}

func TestFeedback_Polymorphic(t *testing.T) {
	app := newTestApp(t)
	alice := testutil.CreateAccount(t, app.db, "alice")
	testutil.CreateAccount(t, app.db, "bob")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	note := testutil.CreateNote(t, app.db, alice, park, "hello")
	media := testutil.CreateMedia(t, app.db, note, "sunset")
	// 同一个 id 在两张表里分别存在时也不能串
	require.Equal(t, note.ID, media.ID)

	w, env := app.postForm(fmt.Sprintf("/api/note/%d/feedback/bob/new/comment", note.ID), url.Values{"content": {"nice note"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"table_name":"Note"`)

	w, _ = app.postForm(fmt.Sprintf("/api/media/%d/feedback/bob/new/comment", media.ID), url.Values{"content": {"nice photo"}})
	require.Equal(t, http.StatusOK, w.Code)

	var noteFeedbacks, mediaFeedbacks []map[string]any
	_, env = app.get(fmt.Sprintf("/api/note/%d/feedbacks", note.ID))
	require.NoError(t, json.Unmarshal(env.Data, &noteFeedbacks))
	_, env = app.get(fmt.Sprintf("/api/media/%d/feedbacks", media.ID))
	require.NoError(t, json.Unmarshal(env.Data, &mediaFeedbacks))

	require.Len(t, noteFeedbacks, 1)
	require.Len(t, mediaFeedbacks, 1)
	assert.Equal(t, "nice note", noteFeedbacks[0]["content"])
	assert.Equal(t, "Note", noteFeedbacks[0]["table_name"])
	assert.Equal(t, "nice photo", mediaFeedbacks[0]["content"])
	assert.Equal(t, "Media", mediaFeedbacks[0]["table_name"])

	id := uint64(noteFeedbacks[0]["id"].(float64))
	w, env = app.get(fmt.Sprintf("/api/feedback/%d", id))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"bob"`)

	_, env = app.get("/api/account/bob/feedbacks")
	var bobs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bobs))
	assert.Len(t, bobs, 2)
}

func TestFeedback_Errors(t *testing.T) {
	app := newTestApp(t)
	alice := testutil.CreateAccount(t, app.db, "alice")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	note := testutil.CreateNote(t, app.db, alice, park, "hello")

	w, _ := app.postForm("/api/note/77/feedback/alice/new/comment", url.Values{"content": {"x"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.postForm(fmt.Sprintf("/api/note/%d/feedback/carol/new/comment", note.ID), url.Values{"content": {"x"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.postForm(fmt.Sprintf("/api/note/%d/feedback/alice/new/comment", note.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.get("/api/media/5/feedbacks")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.get("/api/feedback/5")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContext_ActivitiesAndLandmarks(t *testing.T) {
	app := newTestApp(t)
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	tower := testutil.CreateContext(t, app.db, models.ContextLandmark, "tower")

	var activities, landmarks []map[string]any
	_, env := app.get("/api/context/activities")
	require.NoError(t, json.Unmarshal(env.Data, &activities))
	_, env = app.get("/api/context/landmarks")
	require.NoError(t, json.Unmarshal(env.Data, &landmarks))

	require.Len(t, activities, 1)
	require.Len(t, landmarks, 1)
	assert.Equal(t, float64(park.ID), activities[0]["id"])
	assert.Equal(t, float64(tower.ID), landmarks[0]["id"])

	w, env := app.get(fmt.Sprintf("/api/context/%d", tower.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"kind":"Landmark"`)

	w, _ = app.get("/api/context/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSite_Contexts(t *testing.T) {
	app := newTestApp(t)
	site := testutil.CreateSite(t, app.db, "aces")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	park.SiteID = &site.ID
	require.NoError(t, app.db.Save(park).Error)
	testutil.CreateContext(t, app.db, models.ContextActivity, "elsewhere")

	_, env := app.get("/api/sites")
	assert.Contains(t, string(env.Data), `"name":"aces"`)

	w, env := app.get(fmt.Sprintf("/api/site/%d/contexts", site.ID))
	require.Equal(t, http.StatusOK, w.Code)
	var contexts []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &contexts))
	require.Len(t, contexts, 1)
	assert.Equal(t, "park", contexts[0]["name"])

	w, _ = app.get("/api/site/404")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpload(t *testing.T) {
	app := newTestApp(t)

	w := app.do(uploadRequest(t, "photo", "photo.jpg", []byte("jpeg")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := app.decode(w)
	assert.Contains(t, string(env.Data), `"filename":"photo.jpg"`)

	w = app.do(uploadRequest(t, "photo", "evil.exe", []byte("MZ")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(uploadRequest(t, "photo", "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(uploadRequest(t, "file", "photo.png", []byte("png")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_AlwaysSucceed(t *testing.T) {
	app := newTestApp(t)
	app.cfg.Upload.AlwaysSucceed = true

	for _, name := range []string{"photo.jpg", "evil.exe", ""} {
		w := app.do(uploadRequest(t, "photo", name, []byte("data")))
		require.Equal(t, http.StatusOK, w.Code, name)
		body, err := io.ReadAll(w.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true}`, string(body), name)
	}
}

func TestNoRoute(t *testing.T) {
	app := newTestApp(t)
	w, env := app.get("/api/nothing/here")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 404, env.Code)
}

func TestStoreFailure(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.db.Migrator().DropTable(&models.Account{}))

	for _, path := range []string{"/api/accounts", "/api/accounts/count", "/api/account/alice"} {
		w, env := app.get(path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Equal(t, 500, env.Code, path)
		assert.Equal(t, "store failure", env.Msg, path)
		assert.NotContains(t, w.Body.String(), "no such table", path)
	}
}

func TestPanicRecovered(t *testing.T) {
	app := newTestApp(t)
	app.engine.GET("/api/explode", func(c *gin.Context) {
		panic("nil map write")
	})

	w, env := app.get("/api/explode")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "internal server error", env.Msg)
	assert.NotContains(t, w.Body.String(), "nil map write")

	w = app.do(httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmptyFieldsArePresent(t *testing.T) {
	app := newTestApp(t)
	alice := testutil.CreateAccount(t, app.db, "alice")
	park := testutil.CreateContext(t, app.db, models.ContextActivity, "park")
	note := testutil.CreateNote(t, app.db, alice, park, "hello")

	w, env := app.postForm("/api/note/new/alice", url.Values{"content": {""}, "context": {"park"}, "kind": {""}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"content":""`)

	w, env = app.postForm(fmt.Sprintf("/api/note/%d/feedback/alice/new/comment", note.ID), url.Values{"content": {""}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"content":""`)

	w, env = app.postForm(fmt.Sprintf("/api/note/%d/feedback/alice/new/comment", note.ID), url.Values{"other": {"x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "some parameters are missing", env.Msg)
}

func TestInvalidIDMessage(t *testing.T) {
	app := newTestApp(t)

	w, env := app.get("/api/context/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id: abc", env.Msg)
}
