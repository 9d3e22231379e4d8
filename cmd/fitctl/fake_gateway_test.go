package main

import (
	"context"
	"sort"
	"sync"

	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/store"
)

// memGateway is an in-memory fitnessGateway with the same not-found and cascade behavior.
type memGateway struct {
	mu       sync.Mutex
	nextID   int
	users    map[int]users.User
	workouts map[int]workouts.Workout
	friends  map[int][]int
	goals    map[int]goals.Goal
	goalUser map[int]int
}

func newMemGateway() *memGateway {
	return &memGateway{
		users:    map[int]users.User{},
		workouts: map[int]workouts.Workout{},
		friends:  map[int][]int{},
		goals:    map[int]goals.Goal{},
		goalUser: map[int]int{},
	}
}

func (g *memGateway) id() int {
	g.nextID++
	return g.nextID
}

func (g *memGateway) CreateUser(_ context.Context, newUser users.NewUser) (*users.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	u := users.User{ID: g.id(), Name: newUser.Name, Email: newUser.Email, Weight: newUser.Weight}
	g.users[u.ID] = u
	return &u, nil
}

func (g *memGateway) ReadUser(_ context.Context, id int) (*users.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (g *memGateway) UpdateUser(_ context.Context, user users.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	g.users[user.ID] = user
	return nil
}

func (g *memGateway) DeleteUser(_ context.Context, id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(g.users, id)
	for wid, w := range g.workouts {
		if w.UserID == id {
			delete(g.workouts, wid)
		}
	}
	delete(g.friends, id)
	for gid, uid := range g.goalUser {
		if uid == id {
			delete(g.goals, gid)
			delete(g.goalUser, gid)
		}
	}
	return nil
}

func (g *memGateway) CreateWorkout(_ context.Context, nw workouts.NewWorkout) (*workouts.Workout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.users[nw.UserID]; !ok {
		return nil, store.ErrInvalidInput
	}
	w := workouts.Workout{ID: g.id(), UserID: nw.UserID, Date: nw.Date, DurationMinutes: nw.DurationMinutes, Exercises: []workouts.Exercise{}}
	for _, ex := range nw.Exercises {
		w.Exercises = append(w.Exercises, workouts.Exercise{ID: g.id(), Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps, WeightLifted: ex.WeightLifted})
	}
	g.workouts[w.ID] = w
	return &w, nil
}

func (g *memGateway) ReadWorkouts(_ context.Context, userID int) ([]workouts.Workout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := []workouts.Workout{}
	for _, w := range g.workouts {
		if w.UserID == userID {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (g *memGateway) DeleteWorkout(_ context.Context, id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.workouts[id]; !ok {
		return store.ErrNotFound
	}
	delete(g.workouts, id)
	return nil
}

func (g *memGateway) AddFriend(_ context.Context, userID, friendID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.users[friendID]; !ok {
		return store.ErrInvalidInput
	}
	g.friends[userID] = append(g.friends[userID], friendID)
	return nil
}

func (g *memGateway) RemoveFriend(_ context.Context, userID, friendID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := g.friends[userID]
	for i, id := range list {
		if id == friendID {
			g.friends[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *memGateway) ListFriends(_ context.Context, userID int) ([]friends.Friend, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := []friends.Friend{}
	for _, id := range g.friends[userID] {
		if u, ok := g.users[id]; ok {
			list = append(list, friends.Friend{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return list, nil
}

func (g *memGateway) CreateGoal(_ context.Context, userID int, description string) (*goals.Goal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	goal := goals.Goal{ID: g.id(), Description: description}
	g.goals[goal.ID] = goal
	g.goalUser[goal.ID] = userID
	return &goal, nil
}

func (g *memGateway) ListGoals(_ context.Context, userID int) ([]goals.Goal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	list := []goals.Goal{}
	for id, goal := range g.goals {
		if g.goalUser[id] == userID {
			list = append(list, goal)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (g *memGateway) SetGoalStatus(_ context.Context, goalID int, completed bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	goal, ok := g.goals[goalID]
	if !ok {
		return store.ErrNotFound
	}
	goal.Completed = completed
	g.goals[goalID] = goal
	return nil
}

func (g *memGateway) DeleteGoal(_ context.Context, goalID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.goals[goalID]; !ok {
		return store.ErrNotFound
	}
	delete(g.goals, goalID)
	delete(g.goalUser, goalID)
	return nil
}

func (g *memGateway) Leaderboard(_ context.Context, metric insights.Metric) ([]insights.LeaderboardEntry, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	entries := []insights.LeaderboardEntry{}
	for _, u := range g.users {
		var value int64
		for _, w := range g.workouts {
			if w.UserID != u.ID {
				continue
			}
			if metric == insights.MetricTotalMinutes {
				value += int64(w.DurationMinutes)
			} else {
				value++
			}
		}
		entries = append(entries, insights.LeaderboardEntry{UserID: u.ID, Name: u.Name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries, nil
}

func (g *memGateway) UserInsights(_ context.Context, userID int) (*insights.UserInsights, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var stats insights.UserInsights
	for _, w := range g.workouts {
		if w.UserID != userID {
			continue
		}
		d := int64(w.DurationMinutes)
		if stats.Count == 0 || d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
		stats.Count++
		stats.Sum += d
	}
	if stats.Count == 0 {
		return nil, store.ErrNotFound
	}
	stats.Average = float64(stats.Sum) / float64(stats.Count)
	return &stats, nil
}
