package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/mock"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAccessToken = "valid-access-token"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{Environment: config.EnvironmentLocal},
		Auth: config.Auth{
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
			CookiePath:      "/",
		},
		Upload: config.Upload{
			AllowedMIMETypes: []string{"image/jpeg", "image/png", "image/jpg"},
			AllowedFormats:   []string{"jpeg", "jpg", "png"},
			MaxFileSize:      5 << 20,
			MaxDimension:     4096,
			MaxImagePixels:   50_000_000,
		},
	}
}

// testServices holds the mocks behind a test Handler.
type testServices struct {
	auth    *mock.MockAuthService
	reset   *mock.MockPasswordResetService
	profile *mock.MockProfileService
	kin     *mock.MockNextOfKinService
	upload  *mock.MockUploadService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		reset:   mock.NewMockPasswordResetService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		kin:     mock.NewMockNextOfKinService(ctrl),
		upload:  mock.NewMockUploadService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:          ts.auth,
		PasswordResetService: ts.reset,
		ProfileService:       ts.profile,
		NextOfKinService:     ts.kin,
		UploadService:        ts.upload,
		AppInfoService:       ts.appInfo,
	}

	return NewHandler(services, testConfig(), logger.Nop()), ts
}

func testUser() models.User {
	return models.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		FirstName:     "Alice",
		LastName:      "Wanjiru",
		IDNo:          12345678,
		AccountStatus: models.AccountStatusActive,
		Role:          models.RoleCustomer,
		IsActive:      true,
	}
}

// authenticateAs makes the auth middleware accept testAccessToken as user.
func (ts *testServices) authenticateAs(user models.User) {
	ts.auth.EXPECT().Authenticate(gomock.Any(), testAccessToken).Return(user, nil)
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authorized(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: cookieAccessToken, Value: testAccessToken})
	return req
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	require.Equal(t, statusError, body.Status)
	return body
}

func responseCookies(rr *httptest.ResponseRecorder) map[string]*http.Cookie {
	cookies := make(map[string]*http.Cookie)
	for _, c := range rr.Result().Cookies() {
		cookies[c.Name] = c
	}
	return cookies
}

// multipartRequest builds an upload request whose "file" part carries data
// with contentType.
func multipartRequest(t *testing.T, path, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
