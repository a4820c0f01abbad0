package handlers_test

import (
	"Portfolio/internal/config"
	"Portfolio/internal/handlers"
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"Portfolio/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router http.Handler
	cfg    *config.Config
}

// newTestEnv поднимает полный роутер поверх отдельной in-memory SQLite и сидирует администраторов
func newTestEnv(t *testing.T, admins ...model.Admin) *testEnv {
	t.Helper()
	return newTestEnvDSN(t, "file:"+uuid.NewString()+"?mode=memory&cache=shared", admins...)
}

// newTestEnvDSN то же самое поверх произвольного DSN (например, файла во временном каталоге)
func newTestEnvDSN(t *testing.T, dsn string, admins ...model.Admin) *testEnv {
	t.Helper()
	db, err := repo.InitDB(dsn, nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{UploadMaxMB: 1, CORSOrigin: "*"}

	authSvc := service.NewAuthService(repo.NewAdminRepository(db), repo.NewTokenRepository(db), service.PlainPasswordMatcher, logger)
	for _, a := range admins {
		require.NoError(t, authSvc.SeedAdmin(context.Background(), a))
	}
	blogSvc := service.NewBlogService(repo.NewBlogRepository(db), authSvc, logger)
	projectSvc := service.NewProjectService(repo.NewProjectRepository(db), authSvc, logger)

	h := handlers.NewHandler(authSvc, blogSvc, projectSvc, logger, cfg)
	return &testEnv{router: h.Router, cfg: cfg}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

type authBody struct {
	UUID    int64  `json:"uuid"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// login выполняет POST /auth и возвращает разобранный ответ
func (e *testEnv) login(t *testing.T, email, password string) (int, authBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)))
	req.Header.Set("Content-Type", "application/json")
	rr := e.do(req)
	var body authBody
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr.Code, body
}

type imagePart struct {
	data        []byte
	contentType string
}

// makeMultipart собирает multipart-тело; image == nil — без файла
func makeMultipart(t *testing.T, fields map[string]string, image *imagePart) (string, *bytes.Buffer) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="image.bin"`)
		if image.contentType != "" {
			hdr.Set("Content-Type", image.contentType)
		}
		pw, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = pw.Write(image.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return w.FormDataContentType(), body
}

func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, image *imagePart, id *authBody) *http.Request {
	t.Helper()
	ct, body := makeMultipart(t, fields, image)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", ct)
	setIdentity(req, id)
	return req
}

func setIdentity(req *http.Request, id *authBody) {
	if id == nil {
		return
	}
	req.Header.Set("uuid", strconv.FormatInt(id.UUID, 10))
	req.Header.Set("token", id.Token)
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var m struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), "body: %s", rr.Body.String())
	return m.Message
}

func pngImage() *imagePart {
	return &imagePart{data: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}, contentType: "image/png"}
}

var admin = model.Admin{UUID: 101, Email: "a@b.com", Password: "x"}
