package cache

import (
	"context"
	"sync"

	"github.com/heartmarshall/factsphere/internal/domain"
)

var _ factStore = &factStoreMock{}

type factStoreMock struct {
	FetchFactsFunc func(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
	InsertFactFunc func(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	UpdateVoteFunc func(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)

	calls struct {
		FetchFacts []struct {
			Ctx    context.Context
			Filter domain.FactFilter
		}
		InsertFact []struct {
			Ctx context.Context
			Nf  domain.NewFact
		}
		UpdateVote []struct {
			Ctx   context.Context
			ID    domain.FactID
			Kind  domain.VoteKind
			Value int
		}
	}
	lockFetchFacts sync.RWMutex
	lockInsertFact sync.RWMutex
	lockUpdateVote sync.RWMutex
}

func (mock *factStoreMock) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	if mock.FetchFactsFunc == nil {
		panic("factStoreMock.FetchFactsFunc: method is nil but factStore.FetchFacts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FactFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFetchFacts.Lock()
	mock.calls.FetchFacts = append(mock.calls.FetchFacts, callInfo)
	mock.lockFetchFacts.Unlock()
	return mock.FetchFactsFunc(ctx, filter)
}

func (mock *factStoreMock) FetchFactsCalls() []struct {
	Ctx    context.Context
	Filter domain.FactFilter
} {
	mock.lockFetchFacts.RLock()
	calls := mock.calls.FetchFacts
	mock.lockFetchFacts.RUnlock()
	return calls
}

func (mock *factStoreMock) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	if mock.InsertFactFunc == nil {
		panic("factStoreMock.InsertFactFunc: method is nil but factStore.InsertFact was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Nf  domain.NewFact
	}{Ctx: ctx, Nf: nf}
	mock.lockInsertFact.Lock()
	mock.calls.InsertFact = append(mock.calls.InsertFact, callInfo)
	mock.lockInsertFact.Unlock()
	return mock.InsertFactFunc(ctx, nf)
}

func (mock *factStoreMock) InsertFactCalls() []struct {
	Ctx context.Context
	Nf  domain.NewFact
} {
	mock.lockInsertFact.RLock()
	calls := mock.calls.InsertFact
	mock.lockInsertFact.RUnlock()
	return calls
}

func (mock *factStoreMock) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	if mock.UpdateVoteFunc == nil {
		panic("factStoreMock.UpdateVoteFunc: method is nil but factStore.UpdateVote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    domain.FactID
		Kind  domain.VoteKind
		Value int
	}{Ctx: ctx, ID: id, Kind: kind, Value: value}
	mock.lockUpdateVote.Lock()
	mock.calls.UpdateVote = append(mock.calls.UpdateVote, callInfo)
	mock.lockUpdateVote.Unlock()
	return mock.UpdateVoteFunc(ctx, id, kind, value)
}

func (mock *factStoreMock) UpdateVoteCalls() []struct {
	Ctx   context.Context
	ID    domain.FactID
	Kind  domain.VoteKind
	Value int
} {
	mock.lockUpdateVote.RLock()
	calls := mock.calls.UpdateVote
	mock.lockUpdateVote.RUnlock()
	return calls
}
