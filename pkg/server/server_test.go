package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"mortlach.dev/Rickhouse/configs"
	"mortlach.dev/Rickhouse/mocks"
	"mortlach.dev/Rickhouse/pkg/server"
)

type ServerSuite struct {
	suite.Suite
	inventoryRepo *mocks.InventoryRepository
	taskRepo      *mocks.TaskRepository
	router        *gin.Engine
	observedLogs  *observer.ObservedLogs
}

func (suite *ServerSuite) SetupTest() {
	suite.inventoryRepo = mocks.NewInventoryRepository(suite.T())
	suite.taskRepo = mocks.NewTaskRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	conf := &configs.Config{}
	inventory := server.NewInventoryServer(suite.inventoryRepo, logger, conf)
	tasks := server.NewTaskServer(suite.taskRepo, logger)
	suite.router = server.NewRouter(inventory, tasks, logger)
}

func (suite *ServerSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerSuite) get(path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerSuite) decode(recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any

	err := json.Unmarshal(recorder.Body.Bytes(), &body)
	suite.Require().NoError(err)

	return body
}
