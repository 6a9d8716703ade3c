package mocks

import (
	"context"
	"time"

	"canteen-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ReportServiceInterface struct {
	mock.Mock
}

func NewReportServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportServiceInterface {
	m := &ReportServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportServiceInterface) Daily(day time.Time) (*domain.DailyReport, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *ReportServiceInterface) ByCategory(start, end time.Time) (*domain.CategoryReport, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryReport), args.Error(1)
}

func (m *ReportServiceInterface) Popular(ctx context.Context, start, end *time.Time, limit int) ([]domain.PopularDish, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularDish), args.Error(1)
}
