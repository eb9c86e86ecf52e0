package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskflow/config"
	"taskflow/internal/entities"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newClient(t *testing.T, engine *gin.Engine) (*Client, *session.Memory) {
	t.Helper()
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return clientFor(t, srv.URL)
}

func clientFor(t *testing.T, baseURL string) (*Client, *session.Memory) {
	t.Helper()
	sessions := session.NewMemory()
	cfg := &config.Config{API: config.APIConfig{BaseURL: baseURL, RequestTimeout: time.Second}}
	c, err := New(zap.NewNop().Sugar(), cfg, sessions)
	require.NoError(t, err)
	require.NoError(t, c.OnStart(context.Background()))
	t.Cleanup(func() { _ = c.OnStop(context.Background()) })
	return c, sessions
}

func token(t *testing.T, userID int64) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestListTeams(t *testing.T) {
	r := gin.New()
	r.GET("/teams", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"id": 1, "name": "Core"}, {"id": 2, "name": "Ops"}})
	})
	r.GET("/teams/:id/members", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"id": 5, "username": "ann"}})
	})
	client, _ := newClient(t, r)

	teams, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "Ops", teams[1].Name)
	require.NotNil(t, teams[0].Members)

	members, err := client.ListTeamMembers(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []entities.User{{ID: 5, Username: "ann"}}, members)
}

func TestListTeamsRejectsNonArray(t *testing.T) {
	r := gin.New()
	r.GET("/teams", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"teams": []any{}})
	})
	client, _ := newClient(t, r)

	_, err := client.ListTeams(context.Background())
	require.ErrorIs(t, err, entities.ErrDecode)
}

func TestNonJSONResponse(t *testing.T) {
	r := gin.New()
	r.GET("/users", func(c *gin.Context) {
		c.String(http.StatusOK, "<html>oops</html>")
	})
	client, _ := newClient(t, r)

	_, err := client.ListUsers(context.Background())
	require.ErrorIs(t, err, entities.ErrDecode)
	require.Contains(t, err.Error(), "invalid response format from server")
}

func TestEmptyListBodies(t *testing.T) {
	r := gin.New()
	r.GET("/tasks/get-task", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/users", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte("null"))
	})
	client, _ := newClient(t, r)

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Empty(t, tasks)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestErrorResponses(t *testing.T) {
	r := gin.New()
	r.POST("/teams", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "Name taken"}, {"msg": "Too short"}}})
	})
	r.DELETE("/teams/:id", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
	})
	r.DELETE("/tasks/:id", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	client, _ := newClient(t, r)

	_, err := client.CreateTeam(context.Background(), "x")
	var apiErr *entities.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Name taken, Too short", apiErr.Message)

	err = client.DeleteTeam(context.Background(), 3)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Token expired", apiErr.Message)

	err = client.DeleteTask(context.Background(), 3)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Empty(t, apiErr.Message)
	require.NotErrorIs(t, err, entities.ErrUnauthorized)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client, _ := clientFor(t, url)

	_, err := client.ListTeams(context.Background())
	require.ErrorIs(t, err, entities.ErrTransport)
	var apiErr *entities.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Zero(t, apiErr.Status)
}

func TestTaskPayload(t *testing.T) {
	var got map[string]any
	r := gin.New()
	handler := func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		c.JSON(http.StatusOK, gin.H{
			"id": 11, "title": got["title"], "team_id": got["team_id"], "status": got["status"],
			"assigned_by_id": 1, "due_date": "2025-01-02T00:00:00.000Z",
		})
	}
	r.POST("/tasks/create-task", handler)
	r.PUT("/tasks/:id", handler)
	client, _ := newClient(t, r)

	due := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	task, err := client.CreateTask(context.Background(), entities.TaskDraft{Title: "Ship", TeamID: 4, DueDate: &due})
	require.NoError(t, err)
	require.Equal(t, int64(11), task.ID)
	require.Equal(t, entities.StatusToDo, task.Status)
	require.Equal(t, int64(1), task.AssignedByID)

	require.Equal(t, "Ship", got["title"])
	require.Equal(t, "2025-01-02", got["due_date"])
	require.Nil(t, got["description"])
	require.Contains(t, got, "description")
	require.NotContains(t, got, "assigned_to_id")
	require.NotContains(t, got, "assigned_by_id")

	assignee := int64(8)
	_, err = client.UpdateTask(context.Background(), 11, entities.TaskDraft{
		ID: 11, Title: "Ship", TeamID: 4, AssignedToID: &assignee, Status: entities.StatusDone,
	})
	require.NoError(t, err)
	require.Equal(t, float64(8), got["assigned_to_id"])
	require.Equal(t, "Done", got["status"])
}

func TestLoginAttachesCredential(t *testing.T) {
	tok := token(t, 42)
	var authHeader, cookie, requestID string

	r := gin.New()
	r.POST("/auth/login", func(c *gin.Context) {
		var req struct{ Email, Password string }
		require.NoError(t, c.ShouldBindJSON(&req))
		require.Equal(t, "ann@example.com", req.Email)
		c.SetCookie("sid", "abc", 3600, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "token": tok})
	})
	r.GET("/users", func(c *gin.Context) {
		authHeader = c.GetHeader("Authorization")
		cookie, _ = c.Cookie("sid")
		requestID = c.GetHeader(requestIDHeader)
		c.JSON(http.StatusOK, []gin.H{})
	})
	client, sessions := newClient(t, r)

	s, err := client.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, tok, s.Token)
	require.Equal(t, int64(42), s.UserID)
	require.Equal(t, "sid=abc", s.Cookies)

	saved, err := sessions.Load()
	require.NoError(t, err)
	require.Equal(t, tok, saved.Token)
	require.Equal(t, "sid=abc", saved.Cookies)

	_, err = client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+tok, authHeader)
	require.Equal(t, "abc", cookie)
	require.NotEmpty(t, requestID)
}

func TestLoginWithoutToken(t *testing.T) {
	r := gin.New()
	r.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	client, sessions := newClient(t, r)

	_, err := client.Login(context.Background(), "ann@example.com", "secret1")
	require.ErrorIs(t, err, entities.ErrNoToken)
	saved, _ := sessions.Load()
	require.False(t, saved.Authenticated())
}

func TestRegister(t *testing.T) {
	r := gin.New()
	r.POST("/auth/register", func(c *gin.Context) {
		var req map[string]any
		require.NoError(t, c.ShouldBindJSON(&req))
		if req["username"] == "taken" {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	client, _ := newClient(t, r)

	require.NoError(t, client.Register(context.Background(), "ann", "ann@example.com", "secret1"))
	err := client.Register(context.Background(), "taken", "t@example.com", "secret1")
	require.ErrorIs(t, err, entities.ErrRegistrationRejected)
}

func TestOnStartRestoresAndLogoutClears(t *testing.T) {
	tok := token(t, 7)
	var authHeader string

	r := gin.New()
	r.GET("/teams", func(c *gin.Context) {
		authHeader = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []gin.H{})
	})
	r.POST("/auth/logout", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sessions := session.NewMemory()
	require.NoError(t, sessions.Save(entities.Session{Token: tok, Cookies: "sid=abc"}))
	cfg := &config.Config{API: config.APIConfig{BaseURL: srv.URL, RequestTimeout: time.Second}}
	client, err := New(zap.NewNop().Sugar(), cfg, sessions)
	require.NoError(t, err)
	require.NoError(t, client.OnStart(context.Background()))

	require.Equal(t, int64(7), client.Session().UserID)
	require.Equal(t, "sid=abc", client.Session().Cookies)
	_, err = client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+tok, authHeader)

	err = client.Logout(context.Background())
	require.Error(t, err)
	require.False(t, client.Session().Authenticated())
	saved, _ := sessions.Load()
	require.False(t, saved.Authenticated())
}
