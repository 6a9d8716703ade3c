package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type ReportCache struct {
	mock.Mock
}

func NewReportCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportCache {
	m := &ReportCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportCache) PopularKey(start, end *time.Time, limit int) string {
	args := m.Called(start, end, limit)
	return args.String(0)
}

func (m *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *ReportCache) Set(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
