//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerAndLogin creates a user through the API and returns it with a session token.
func (s *APITestSuite) registerAndLogin(name string) (users.User, string) {
	t := s.T()

	status, body := s.do(http.MethodPost, "/users", "", users.NewUser{
		Name:   name,
		Email:  gofakeit.Email(),
		Weight: 70.5,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var user users.User
	s.decode(body, &user)

	status, body = s.do(http.MethodPost, "/login", "", users.LoginRequest{UserID: user.ID})
	require.Equal(t, http.StatusOK, status, string(body))
	var loginResp users.LoginResponse
	s.decode(body, &loginResp)
	require.NotEmpty(t, loginResp.Token)

	return user, loginResp.Token
}

func (s *APITestSuite) TestProfileAndSession() {
	t := s.T()
	user, token := s.registerAndLogin("Ana")

	status, body := s.do(http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me users.User
	s.decode(body, &me)
	assert.Equal(t, user, me)

	status, body = s.do(http.MethodPut, "/me", token, users.NewUser{Name: "Ana B", Email: user.Email, Weight: 61})
	require.Equal(t, http.StatusOK, status, string(body))
	s.decode(body, &me)
	assert.Equal(t, "Ana B", me.Name)
	assert.Equal(t, 61.0, me.Weight)

	status, _ = s.do(http.MethodGet, "/users/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodPost, "/login", "", users.LoginRequest{UserID: 9999})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodPost, "/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *APITestSuite) TestDeleteMeCascadesAndEndsSession() {
	t := s.T()
	ana, anaToken := s.registerAndLogin("Ana")
	_, boToken := s.registerAndLogin("Bo")

	status, _ := s.do(http.MethodPost, "/me/workouts", anaToken, workouts.LogWorkoutRequest{DurationMinutes: 30})
	require.Equal(t, http.StatusCreated, status)
	status, _ = s.do(http.MethodPost, "/me/friends/"+itoa(ana.ID), boToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodDelete, "/me", anaToken, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var deleted users.DeleteResponse
	s.decode(body, &deleted)
	assert.Equal(t, ana.ID, deleted.DeletedID)

	status, _ = s.do(http.MethodGet, "/me", anaToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// the friendship pointing at the deleted user is gone
	status, body = s.do(http.MethodGet, "/me/friends", boToken, nil)
	require.Equal(t, http.StatusOK, status)
	var friendList []friends.Friend
	s.decode(body, &friendList)
	assert.Empty(t, friendList)

	var workoutsLeft int
	require.NoError(t, s.pool.QueryRow(context.Background(), `SELECT count(*) FROM workouts`).Scan(&workoutsLeft))
	assert.Zero(t, workoutsLeft)
}

func (s *APITestSuite) TestStaleSessionIsDropped() {
	t := s.T()
	user, token := s.registerAndLogin("Ana")
	status, body := s.do(http.MethodPost, "/login", "", users.LoginRequest{UserID: user.ID})
	require.Equal(t, http.StatusOK, status, string(body))
	var second users.LoginResponse
	s.decode(body, &second)

	_, err := s.pool.Exec(context.Background(), `DELETE FROM users WHERE user_id = $1`, user.ID)
	require.NoError(t, err)

	// every session route answers the same way once the user is gone
	status, _ = s.do(http.MethodGet, "/me/insights", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.do(http.MethodPost, "/me/workouts", second.Token, workouts.LogWorkoutRequest{DurationMinutes: 20})
	assert.Equal(t, http.StatusUnauthorized, status)

	// and the tokens were dropped with the first 401
	status, _ = s.do(http.MethodGet, "/me/workouts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.do(http.MethodGet, "/me", second.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *APITestSuite) TestWorkouts() {
	t := s.T()
	_, token := s.registerAndLogin("Ana")

	status, body := s.do(http.MethodPost, "/me/workouts", token, workouts.LogWorkoutRequest{
		Date:            "2024-03-02",
		DurationMinutes: 45,
		Exercises: []workouts.NewExercise{
			{Name: "Squat", Sets: 5, Reps: 5, WeightLifted: 80},
			{Name: "Bench Press", Sets: 3, Reps: 8, WeightLifted: 60},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var history []workouts.Workout
	s.decode(body, &history)
	require.Len(t, history, 1)
	require.Len(t, history[0].Exercises, 2)
	assert.Equal(t, "Squat", history[0].Exercises[0].Name)

	status, body = s.do(http.MethodPost, "/me/workouts", token, workouts.LogWorkoutRequest{
		Date:            "2024-03-05",
		DurationMinutes: 20,
	})
	require.Equal(t, http.StatusCreated, status)
	s.decode(body, &history)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03-05", history[0].Date.Format(workouts.DateLayout))
	assert.Empty(t, history[0].Exercises)

	status, body = s.do(http.MethodDelete, "/me/workouts/"+itoa(history[1].ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	s.decode(body, &history)
	require.Len(t, history, 1)

	status, _ = s.do(http.MethodDelete, "/me/workouts/424242", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodPost, "/me/workouts", token, workouts.LogWorkoutRequest{Date: "02.03.2024", DurationMinutes: 20})
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *APITestSuite) TestFriendsAndGoals() {
	t := s.T()
	bo, _ := s.registerAndLogin("Bo")
	_, token := s.registerAndLogin("Ana")

	status, body := s.do(http.MethodPost, "/me/friends/"+itoa(bo.ID), token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var friendList []friends.Friend
	s.decode(body, &friendList)
	require.Len(t, friendList, 1)
	assert.Equal(t, "Bo", friendList[0].Name)

	status, _ = s.do(http.MethodPost, "/me/friends/424242", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(http.MethodDelete, "/me/friends/"+itoa(bo.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	s.decode(body, &friendList)
	assert.Empty(t, friendList)

	status, body = s.do(http.MethodPost, "/me/goals", token, goals.NewGoalRequest{Description: "Run 5k"})
	require.Equal(t, http.StatusCreated, status, string(body))
	var goalList []goals.Goal
	s.decode(body, &goalList)
	require.Len(t, goalList, 1)
	assert.False(t, goalList[0].Completed)

	status, body = s.do(http.MethodPut, "/me/goals/"+itoa(goalList[0].ID)+"/status", token, goals.StatusRequest{Completed: true})
	require.Equal(t, http.StatusOK, status)
	s.decode(body, &goalList)
	assert.True(t, goalList[0].Completed)

	status, body = s.do(http.MethodDelete, "/me/goals/"+itoa(goalList[0].ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	s.decode(body, &goalList)
	assert.Empty(t, goalList)
}

func (s *APITestSuite) TestLeaderboardAndInsights() {
	t := s.T()
	bo, boToken := s.registerAndLogin("Bo")
	ana, anaToken := s.registerAndLogin("Ana")
	cy, cyToken := s.registerAndLogin("Cy")

	status, body := s.do(http.MethodGet, "/me/insights", cyToken, nil)
	require.Equal(t, http.StatusOK, status)
	var empty insights.InsightsResponse
	s.decode(body, &empty)
	assert.False(t, empty.HasWorkouts)
	assert.Zero(t, empty.Count)

	for _, minutes := range []int{30, 60, 90} {
		status, _ = s.do(http.MethodPost, "/me/workouts", anaToken, workouts.LogWorkoutRequest{DurationMinutes: minutes})
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ = s.do(http.MethodPost, "/me/workouts", boToken, workouts.LogWorkoutRequest{DurationMinutes: 200})
	require.Equal(t, http.StatusCreated, status)

	status, body = s.do(http.MethodGet, "/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, status)
	var board insights.LeaderboardResponse
	s.decode(body, &board)
	assert.Equal(t, insights.MetricTotalWorkouts, board.Metric)
	require.Len(t, board.Entries, 3)
	assert.Equal(t, []int{ana.ID, bo.ID, cy.ID}, []int{board.Entries[0].UserID, board.Entries[1].UserID, board.Entries[2].UserID})
	assert.Equal(t, int64(0), board.Entries[2].Value)

	status, body = s.do(http.MethodGet, "/leaderboard?metric=total_minutes", "", nil)
	require.Equal(t, http.StatusOK, status)
	s.decode(body, &board)
	assert.Equal(t, bo.ID, board.Entries[0].UserID)
	assert.Equal(t, int64(200), board.Entries[0].Value)

	status, _ = s.do(http.MethodGet, "/leaderboard?metric=calories", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(http.MethodGet, "/me/insights", anaToken, nil)
	require.Equal(t, http.StatusOK, status)
	var stats insights.InsightsResponse
	s.decode(body, &stats)
	assert.True(t, stats.HasWorkouts)
	assert.Equal(t, insights.UserInsights{Count: 3, Sum: 180, Average: 60, Min: 30, Max: 90}, stats.UserInsights)
}
