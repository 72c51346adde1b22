package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tourchain/tcs/internal/gateway"
	"github.com/tourchain/tcs/internal/logic"
	"github.com/tourchain/tcs/internal/router"
	"github.com/tourchain/tcs/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	store.Seed(s)
	pledgeLogic := logic.NewPledgeLogic(s, gateway.EthWallet{}, gateway.NoopLedger{}, nil)
	return router.Setup(s, pledgeLogic), s
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProjects(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, w.Code)

	var projects []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 4)
	require.Contains(t, projects[0]["title"], "TourChain")

	w = doRequest(r, http.MethodGet, "/api/projects?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
}

func TestGetProject(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/projects/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var project map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, float64(1), project["id"])
	require.Equal(t, float64(10000000), project["goal"])

	w = doRequest(r, http.MethodGet, "/api/projects/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/projects/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProjectRewards(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/projects/1/rewards", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rewards []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rewards))
	require.Len(t, rewards, 4)

	// 动态档位的 amount 为按已售份数重算的当前价
	require.Equal(t, true, rewards[0]["isDynamic"])
	require.Equal(t, float64(100+100*87), rewards[0]["amount"])
	require.Equal(t, false, rewards[1]["isDynamic"])
	require.Equal(t, float64(25000), rewards[1]["amount"])

	w = doRequest(r, http.MethodGet, "/api/projects/999/rewards", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePledge(t *testing.T) {
	r, s := newTestServer(t)

	before, _ := s.GetCampaign(1)

	// amount 为展示货币单位，服务端换算为分；projectId 缺省为 1
	w := doRequest(r, http.MethodPost, "/api/pledge",
		`{"amount": 50, "name": "Alice", "email": "alice@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var contribution map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contribution))
	require.Equal(t, float64(5000), contribution["amount"])
	require.Equal(t, float64(1), contribution["projectId"])

	after, _ := s.GetCampaign(1)
	require.Equal(t, before.Raised+5000, after.Raised)
	require.Equal(t, before.Backers+1, after.Backers)
}

func TestCreatePledge_ValidationError(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/pledge", `{"email": "bad"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "amount")
	require.Contains(t, resp["message"], "email")
}

func TestCreatePledge_RewardMismatch(t *testing.T) {
	r, s := newTestServer(t)

	// 种子数据中档位1属于项目1，对项目2提交必须以业务错误拒绝
	w := doRequest(r, http.MethodPost, "/api/pledge",
		`{"projectId": 2, "rewardId": 1, "amount": 250, "name": "Bob", "email": "bob@example.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "回报档位不属于该项目")

	after, _ := s.GetCampaign(2)
	require.Equal(t, int64(4200000), after.Raised)
}

func TestCreatePledge_AmountOutOfRange(t *testing.T) {
	r, s := newTestServer(t)
	before, _ := s.GetCampaign(1)

	w := doRequest(r, http.MethodPost, "/api/pledge",
		`{"amount": 1e17, "name": "Bob", "email": "bob@example.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "amount")

	after, _ := s.GetCampaign(1)
	require.Equal(t, before.Raised, after.Raised)
	require.Equal(t, before.Backers, after.Backers)
}

func TestCreatePledge_MalformedJSON(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/pledge", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePledge_ClosedCampaign(t *testing.T) {
	r, s := newTestServer(t)

	inactive := false
	s.UpdateCampaign(1, store.CampaignUpdate{IsActive: &inactive})

	w := doRequest(r, http.MethodPost, "/api/pledge",
		`{"amount": 10, "name": "Bob", "email": "bob@example.com"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}
