package mood

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/domain"
)

var _ moodRepo = &moodRepoMock{}

type moodRepoMock struct {
	SetFunc        func(ctx context.Context, entry *domain.MoodEntry) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) (map[string]domain.Mood, error)

	calls struct {
		Set []struct {
			Ctx   context.Context
			Entry *domain.MoodEntry
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockSet        sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *moodRepoMock) Set(ctx context.Context, entry *domain.MoodEntry) error {
	if mock.SetFunc == nil {
		panic("moodRepoMock.SetFunc: method is nil but moodRepo.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.MoodEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, entry)
}

func (mock *moodRepoMock) SetCalls() []struct {
	Ctx   context.Context
	Entry *domain.MoodEntry
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *moodRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) (map[string]domain.Mood, error) {
	if mock.ListByUserFunc == nil {
		panic("moodRepoMock.ListByUserFunc: method is nil but moodRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *moodRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
