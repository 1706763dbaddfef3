package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/mock"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/utils"
)

const testHashKey = "testhashkey"

type testAPI struct {
	router  *chi.Mux
	cards   *mock.MockCardService
	appInfo *mock.MockAppInfoService
}

func newTestAPI(t *testing.T, hashKey string) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		cards:   mock.NewMockCardService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{CardService: api.cards, AppInfoService: api.appInfo}
	api.router = NewHandler(services, hashKey, logger.Nop()).Init()

	return api
}

func (a *testAPI) do(method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func signed(t *testing.T, body []byte) []string {
	t.Helper()
	return []string{utils.SignatureHeader, utils.HashString(string(body), testHashKey)}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
